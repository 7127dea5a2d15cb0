package main

// recordAction stores the scene as it was before a mutation. Call it before
// changing the scene; a new action clears the redo stack.
func (m *model) recordAction(actionType ActionType) {
	m.undoStack = append(m.undoStack, Action{Type: actionType, Before: m.scene.Clone()})
	m.redoStack = m.redoStack[:0]
}

func (m *model) undo() bool {
	if len(m.undoStack) == 0 {
		return false
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	m.redoStack = append(m.redoStack, Action{Type: action.Type, Before: m.scene})
	m.scene = action.Before
	m.logger.Debug("undo", "action", action.Type.String(), "shapes", m.scene.Len())
	return true
}

func (m *model) redo() bool {
	if len(m.redoStack) == 0 {
		return false
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	m.undoStack = append(m.undoStack, Action{Type: action.Type, Before: m.scene})
	m.scene = action.Before
	m.logger.Debug("redo", "action", action.Type.String(), "shapes", m.scene.Len())
	return true
}
