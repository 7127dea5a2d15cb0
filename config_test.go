package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	input := `
# shapedemo settings
savedirectory = ~/pictures/shapes
log_file=/tmp/shapedemo.log
walkdelay = 50
worldwidth = 640
WorldHeight = 480
consolelines = 3
unknown = ignored
not a setting
`
	config := parseConfig(strings.NewReader(input), "/home/user")

	if want := filepath.Join("/home/user", "pictures/shapes"); config.SaveDirectory != want {
		t.Errorf("SaveDirectory = %q, want %q", config.SaveDirectory, want)
	}
	if config.LogFile != "/tmp/shapedemo.log" {
		t.Errorf("LogFile = %q", config.LogFile)
	}
	if config.WalkDelay != 50*time.Millisecond {
		t.Errorf("WalkDelay = %v", config.WalkDelay)
	}
	if config.WorldWidth != 640 || config.WorldHeight != 480 {
		t.Errorf("world = %dx%d, want 640x480", config.WorldWidth, config.WorldHeight)
	}
	if config.ConsoleLines != 3 {
		t.Errorf("ConsoleLines = %d", config.ConsoleLines)
	}
}

func TestParseConfigKeepsDefaultsOnBadValues(t *testing.T) {
	input := "walkdelay = soon\nworldwidth = -5\nworldheight = 0\nconsolelines = x\n"
	config := parseConfig(strings.NewReader(input), "")

	want := defaultConfig()
	if *config != *want {
		t.Errorf("config = %+v, want defaults %+v", *config, *want)
	}
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	path, err := config.GetSavePath("a.png")
	if err != nil || path != "a.png" {
		t.Errorf("GetSavePath without directory = %q, %v", path, err)
	}

	config.SaveDirectory = filepath.Join(t.TempDir(), "nested", "dir")
	path, err = config.GetSavePath("a.png")
	if err != nil {
		t.Fatalf("GetSavePath: %v", err)
	}
	if path != filepath.Join(config.SaveDirectory, "a.png") {
		t.Errorf("path = %q", path)
	}
	if info, err := os.Stat(config.SaveDirectory); err != nil || !info.IsDir() {
		t.Errorf("save directory not created: %v", err)
	}
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	logger, closer, err := setupLogger(defaultConfig())
	if err != nil || closer != nil {
		t.Fatalf("setupLogger = %v, %v", closer, err)
	}
	// Must not panic or write anywhere.
	logger.Info("discarded")
}

func TestSetupLoggerWritesFile(t *testing.T) {
	config := defaultConfig()
	config.LogFile = filepath.Join(t.TempDir(), "debug.log")

	logger, closer, err := setupLogger(config)
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	logger.Info("exported scene", "shapes", 2)
	closer.Close()

	data, err := os.ReadFile(config.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "exported scene") || !strings.Contains(string(data), "shapes=2") {
		t.Errorf("log = %q", data)
	}
}
