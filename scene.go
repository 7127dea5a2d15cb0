package main

import "errors"

// ErrNotEnoughShapes is returned by Combine when fewer than two shapes exist.
var ErrNotEnoughShapes = errors.New("not enough shapes to combine")

// Scene is the ordered list of top-level shapes and the active selection.
type Scene struct {
	shapes []Shape
	active int
}

func NewScene(initial ...Shape) *Scene {
	s := &Scene{shapes: append([]Shape(nil), initial...)}
	if len(s.shapes) > 0 {
		s.active = len(s.shapes) - 1
	}
	return s
}

func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns the shapes in drawing order. The slice is shared with the
// scene and must not be modified.
func (s *Scene) Shapes() []Shape {
	return s.shapes
}

// ActiveIndex returns the index of the active shape, or -1 when empty.
func (s *Scene) ActiveIndex() int {
	if len(s.shapes) == 0 {
		return -1
	}
	return s.active
}

func (s *Scene) Active() (Shape, bool) {
	if len(s.shapes) == 0 {
		return nil, false
	}
	return s.shapes[s.active], true
}

// Add appends a shape and makes it active.
func (s *Scene) Add(shape Shape) {
	s.shapes = append(s.shapes, shape)
	s.active = len(s.shapes) - 1
}

// Select makes the shape at index active. Out-of-range indexes are ignored.
func (s *Scene) Select(index int) bool {
	if index < 0 || index >= len(s.shapes) {
		return false
	}
	s.active = index
	return true
}

// Combine replaces the last two shapes with a composite of them, appended
// at the end and made active.
func (s *Scene) Combine() (*CompositeShape, error) {
	n := len(s.shapes)
	if n < 2 {
		return nil, ErrNotEnoughShapes
	}
	combined := NewCompositeShape(s.shapes[n-2], s.shapes[n-1])
	s.shapes[n-2], s.shapes[n-1] = nil, nil
	s.shapes = append(s.shapes[:n-2], combined)
	s.active = len(s.shapes) - 1
	return combined, nil
}

// DeleteActive removes the active shape and clamps the selection.
func (s *Scene) DeleteActive() bool {
	if len(s.shapes) == 0 {
		return false
	}
	copy(s.shapes[s.active:], s.shapes[s.active+1:])
	s.shapes[len(s.shapes)-1] = nil
	s.shapes = s.shapes[:len(s.shapes)-1]
	if s.active >= len(s.shapes) {
		s.active = len(s.shapes) - 1
	}
	if s.active < 0 {
		s.active = 0
	}
	return true
}

// Render draws one full frame: clear, every shape in order, display.
func (s *Scene) Render(target RenderTarget) {
	target.Clear()
	for _, shape := range s.shapes {
		shape.Draw(target)
	}
	target.Display()
}

// Clone deep-copies the scene for the undo history.
func (s *Scene) Clone() *Scene {
	c := &Scene{
		shapes: make([]Shape, len(s.shapes)),
		active: s.active,
	}
	for i, shape := range s.shapes {
		c.shapes[i] = shape.Clone()
	}
	return c
}
