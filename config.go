package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SaveDirectory string
	LogFile       string
	WalkDelay     time.Duration
	WorldWidth    int
	WorldHeight   int
	ConsoleLines  int
}

func defaultConfig() *Config {
	return &Config{
		WalkDelay:    defaultWalkDelay,
		WorldWidth:   defaultWorldWidth,
		WorldHeight:  defaultWorldHeight,
		ConsoleLines: defaultConsoleLines,
	}
}

// loadConfig reads ~/.shapedemorc. A missing file yields the defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".shapedemorc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		case "walkdelay", "walk_delay":
			if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
				config.WalkDelay = time.Duration(ms) * time.Millisecond
			}
		case "worldwidth", "world_width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.WorldWidth = n
			}
		case "worldheight", "world_height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.WorldHeight = n
			}
		case "consolelines", "console_lines":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.ConsoleLines = n
			}
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath places filename in the configured save directory, creating
// the directory on demand.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
