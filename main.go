package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	config := loadConfig()
	logger, logFile, err := setupLogger(config)
	if err != nil {
		log.Printf("log file disabled: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// No alt screen: console lines printed with tea.Println stay above the view.
	p := tea.NewProgram(newModel(config, logger))
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func newModel(config *Config, logger *slog.Logger) model {
	if logger == nil {
		logger = newNopLogger()
	}
	return model{
		mode:            ModeNormal,
		scene:           NewScene(newDefaultCircle()),
		console:         &bytes.Buffer{},
		target:          newRasterTarget(config.WorldWidth, config.WorldHeight, 1),
		config:          config,
		logger:          logger,
		copyToClipboard: writeClipboardText,
	}
}

func newDefaultCircle() Shape  { return NewCircleShape(100, 100, 50) }
func newDefaultLine() Shape    { return NewLineShape(100, 100, 100, 10) }
func newDefaultDiamond() Shape { return NewDiamondShape(200, 200, 50) }

func (m model) Init() tea.Cmd {
	return tea.Println(startupHint)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		width, height, scale := frameLayout(m.width, m.height, m.config.ConsoleLines+1,
			m.config.WorldWidth, m.config.WorldHeight)
		m.target = newRasterTarget(width, height, scale)
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "esc" {
			m.logger.Info("window closed")
			return m, tea.Quit
		}
		// Input that arrives mid-walk is applied once the walk ends.
		if m.mode == ModeWalk {
			m.pendingKeys = append(m.pendingKeys, key)
			return m, nil
		}
		cmd := m.handleKey(key)
		return m, tea.Batch(cmd, m.flushConsole())

	case walkStepMsg:
		cmd := m.advanceWalk()
		return m, tea.Batch(cmd, m.flushConsole())
	}

	return m, nil
}

// handleKey applies one key press to the scene.
func (m *model) handleKey(key string) tea.Cmd {
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "k", "K":
		m.printHelp()
	case "up", "down", "left", "right", "shift+up", "shift+down", "shift+left", "shift+right":
		m.handleNavigation(key)
	case "r", "R":
		m.recolor()
	case "z", "Z":
		m.resize(1)
	case "x", "X":
		m.resize(-1)
	case "t", "T":
		m.create(newDefaultCircle())
	case "l", "L":
		m.create(newDefaultLine())
	case "d", "D":
		m.create(newDefaultDiamond())
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(key[0] - '1')
		if m.scene.Select(index) {
			m.logger.Debug("selected shape", "index", index)
		}
	case "q", "Q":
		m.combine()
	case "e", "E":
		m.deleteActive()
	case "w", "W":
		return m.startWalk()
	case "v", "V":
		m.toggleVisibility()
	case "n", "N":
		m.normalize()
	case "u":
		if !m.undo() {
			m.errorMessage = "Nothing to undo"
		}
	case "U":
		if !m.redo() {
			m.errorMessage = "Nothing to redo"
		}
	case "p", "P":
		m.exportScene()
	case "c", "C":
		m.copySummary()
	}
	return nil
}

func (m *model) printLine(line string) {
	fmt.Fprintln(m.console, line)
}

func (m *model) printHelp() {
	m.printLine(strings.Join(helpLines, "\n"))
}

// flushConsole hands buffered console output to the terminal.
func (m *model) flushConsole() tea.Cmd {
	if m.console.Len() == 0 {
		return nil
	}
	text := strings.TrimRight(m.console.String(), "\n")
	m.console.Reset()
	return tea.Println(text)
}

func (m *model) recolor() {
	shape, ok := m.scene.Active()
	if !ok {
		return
	}
	m.recordAction(ActionRecolor)
	shape.SetColor(nextColor(shape.Color()))
}

func (m *model) resize(delta int) {
	shape, ok := m.scene.Active()
	if !ok {
		return
	}
	m.recordAction(ActionResize)
	size := shape.Size() + delta
	if size < minShapeSize {
		size = minShapeSize
	}
	shape.SetSize(size)
}

func (m *model) create(shape Shape) {
	m.recordAction(ActionCreate)
	m.scene.Add(shape)
	m.logger.Debug("created shape", "kind", shapeName(shape), "index", m.scene.ActiveIndex())
}

func (m *model) combine() {
	if m.scene.Len() >= 2 {
		m.recordAction(ActionCombine)
	}
	combined, err := m.scene.Combine()
	if errors.Is(err, ErrNotEnoughShapes) {
		m.printLine(combineDiagnostic)
		m.logger.Warn("combine skipped", "shapes", m.scene.Len())
		return
	}
	m.logger.Debug("combined shapes", "kind", shapeName(combined), "size", combined.Size())
}

func (m *model) deleteActive() {
	if m.scene.Len() == 0 {
		return
	}
	m.recordAction(ActionDelete)
	m.scene.DeleteActive()
	m.logger.Debug("deleted shape", "remaining", m.scene.Len())
}

func (m *model) toggleVisibility() {
	shape, ok := m.scene.Active()
	if !ok {
		return
	}
	m.recordAction(ActionVisibility)
	shape.SetVisible(shape.Color().A == 0)
}

func (m *model) normalize() {
	shape, ok := m.scene.Active()
	if !ok {
		return
	}
	m.recordAction(ActionNormalize)
	size := shape.Size()
	shape.SetSizeWithDimensions(size, size)
}

// startWalk moves the active shape through the first walk step. The rest
// follow on walkStepMsg ticks so every step is rendered before the pause.
func (m *model) startWalk() tea.Cmd {
	shape, ok := m.scene.Active()
	if !ok {
		return nil
	}
	m.recordAction(ActionWalk)
	m.mode = ModeWalk
	m.walkStep = 0
	shape.Move(walkOffset(0))
	return m.walkTick()
}

func (m *model) walkTick() tea.Cmd {
	return tea.Tick(m.config.WalkDelay, func(time.Time) tea.Msg {
		return walkStepMsg{}
	})
}

func (m *model) advanceWalk() tea.Cmd {
	if m.mode != ModeWalk {
		return nil
	}
	m.walkStep++
	if m.walkStep < walkSteps {
		if shape, ok := m.scene.Active(); ok {
			shape.Move(walkOffset(m.walkStep))
		}
		return m.walkTick()
	}

	m.mode = ModeNormal
	m.walkStep = 0
	return m.replayPendingKeys()
}

// replayPendingKeys applies keys queued during a walk, stopping early if
// one of them starts another walk.
func (m *model) replayPendingKeys() tea.Cmd {
	var cmds []tea.Cmd
	for len(m.pendingKeys) > 0 && m.mode == ModeNormal {
		key := m.pendingKeys[0]
		m.pendingKeys = m.pendingKeys[1:]
		cmds = append(cmds, m.handleKey(key))
	}
	return tea.Batch(cmds...)
}

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.scene.Render(m.target)
	lines := halfBlockLines(m.target.Frame())

	var result strings.Builder
	result.WriteString(strings.Join(lines, "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	status := fmt.Sprintf("Shapes: %d", m.scene.Len())
	if shape, ok := m.scene.Active(); ok {
		status += " | Active: " + describeShape(m.scene.ActiveIndex(), shape)
	} else {
		status += " | Active: none"
	}
	if m.mode == ModeWalk {
		status += fmt.Sprintf(" | Walking %d/%d", m.walkStep+1, walkSteps)
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		return statusStyle.Render(status) + " " + errorStyle.Render("ERROR: "+m.errorMessage)
	}
	if m.successMessage == "" {
		status += " | K for help | Esc to close"
	}
	return statusStyle.Render(status)
}
