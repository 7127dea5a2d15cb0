package main

import (
	"image/color"
	"time"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeWalk
)

type ActionType int

const (
	ActionMove ActionType = iota
	ActionRecolor
	ActionResize
	ActionCreate
	ActionCombine
	ActionDelete
	ActionWalk
	ActionVisibility
	ActionNormalize
)

func (a ActionType) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionRecolor:
		return "recolor"
	case ActionResize:
		return "resize"
	case ActionCreate:
		return "create"
	case ActionCombine:
		return "combine"
	case ActionDelete:
		return "delete"
	case ActionWalk:
		return "walk"
	case ActionVisibility:
		return "visibility"
	case ActionNormalize:
		return "normalize"
	default:
		return "unknown"
	}
}

const (
	moveStep         = 5
	walkDistance     = 70
	walkSteps        = 4
	minShapeSize     = 1
	circlePointCount = 30
)

const (
	defaultWorldWidth   = 800
	defaultWorldHeight  = 800
	defaultWalkDelay    = 200 * time.Millisecond
	defaultConsoleLines = 6
)

var (
	colorRed         = color.RGBA{R: 255, A: 255}
	colorWhite       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlue        = color.RGBA{B: 255, A: 255}
	colorGreen       = color.RGBA{G: 255, A: 255}
	colorTransparent = color.RGBA{}
	colorBackground  = color.RGBA{A: 255}
)

const startupHint = "Press K to print help"

const combineDiagnostic = "Not enough shapes to combine."

var helpLines = []string{
	"K: Show help",
	"Arrow keys: Move (Shift for double step)",
	"R: Change color",
	"Z: Increase size",
	"X: Decrease size",
	"Num1-Num9: Switch objects",
	"T: Create Circle",
	"D: Create Diamond",
	"L: Create Line",
	"Q: Combine objects",
	"W: Walk object",
	"E: Delete object",
	"V: Toggle visibility",
	"N: Normalize size",
	"u/U: Undo/Redo",
	"P: Export PNG",
	"C: Copy scene summary",
	"Esc/Ctrl+C: Close",
}
