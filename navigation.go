package main

func (m *model) handleNavigation(key string) {
	shape, ok := m.scene.Active()
	if !ok {
		return
	}
	speed := m.getMoveSpeed(key) * moveStep

	m.recordAction(ActionMove)
	switch key {
	case "left", "shift+left":
		shape.Move(-speed, 0)
	case "right", "shift+right":
		shape.Move(speed, 0)
	case "up", "shift+up":
		shape.Move(0, -speed)
	case "down", "shift+down":
		shape.Move(0, speed)
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// walkOffset is the displacement of walk step i: right, down, left, up.
func walkOffset(step int) (int, int) {
	switch step {
	case 0:
		return walkDistance, 0
	case 1:
		return 0, walkDistance
	case 2:
		return -walkDistance, 0
	case 3:
		return 0, -walkDistance
	}
	return 0, 0
}
