package main

import (
	"bytes"
	"log/slog"
)

type model struct {
	width           int
	height          int
	mode            Mode
	scene           *Scene
	undoStack       []Action
	redoStack       []Action
	walkStep        int
	pendingKeys     []string
	console         *bytes.Buffer
	target          *rasterTarget
	config          *Config
	logger          *slog.Logger
	errorMessage    string
	successMessage  string
	copyToClipboard func(string) error
}

// Action is one undoable scene mutation. Before holds the scene as it was
// prior to the mutation (or after it, once moved to the redo stack).
type Action struct {
	Type   ActionType
	Before *Scene
}

type walkStepMsg struct{}
