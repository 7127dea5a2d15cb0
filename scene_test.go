package main

import (
	"errors"
	"testing"
)

func TestSceneAddActivatesLast(t *testing.T) {
	s := NewScene()
	if s.ActiveIndex() != -1 {
		t.Fatalf("empty scene ActiveIndex() = %d, want -1", s.ActiveIndex())
	}
	for i := 0; i < 5; i++ {
		s.Add(NewCircleShape(0, 0, i+1))
		if s.Len() != i+1 {
			t.Fatalf("Len() = %d, want %d", s.Len(), i+1)
		}
		if s.ActiveIndex() != i {
			t.Fatalf("ActiveIndex() = %d, want %d", s.ActiveIndex(), i)
		}
	}
}

func TestSceneSelect(t *testing.T) {
	s := NewScene(NewCircleShape(0, 0, 1), NewCircleShape(0, 0, 2))
	if !s.Select(0) || s.ActiveIndex() != 0 {
		t.Errorf("Select(0) did not activate index 0")
	}
	if s.Select(2) || s.Select(-1) {
		t.Errorf("out-of-range Select succeeded")
	}
	if s.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex() = %d after ignored selects, want 0", s.ActiveIndex())
	}
}

func TestSceneCombine(t *testing.T) {
	first := NewCircleShape(0, 0, 1)
	line := NewLineShape(0, 0, 100, 10)
	circle := NewCircleShape(0, 0, 50)
	s := NewScene(first, line, circle)
	s.Select(0)

	combined, err := s.Combine()
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if s.Len() != 2 || s.ActiveIndex() != 1 {
		t.Fatalf("Len/ActiveIndex = %d/%d, want 2/1", s.Len(), s.ActiveIndex())
	}
	if s.Shapes()[0] != Shape(first) || s.Shapes()[1] != Shape(combined) {
		t.Errorf("unexpected order after combine")
	}
	a, b := combined.Children()
	if a != Shape(line) || b != Shape(circle) {
		t.Errorf("children not in second-to-last, last order")
	}
	if combined.Size() != 75 {
		t.Errorf("Size() = %d, want 75", combined.Size())
	}
}

func TestSceneCombineNeedsTwo(t *testing.T) {
	s := NewScene(NewCircleShape(0, 0, 1))
	if _, err := s.Combine(); !errors.Is(err, ErrNotEnoughShapes) {
		t.Fatalf("Combine err = %v, want ErrNotEnoughShapes", err)
	}
	if s.Len() != 1 || s.ActiveIndex() != 0 {
		t.Errorf("scene mutated by failed combine")
	}
}

func TestSceneDeleteActive(t *testing.T) {
	a, b, c := NewCircleShape(0, 0, 1), NewCircleShape(0, 0, 2), NewCircleShape(0, 0, 3)

	tests := []struct {
		name       string
		active     int
		wantSizes  []int
		wantActive int
	}{
		{"middle keeps index", 1, []int{1, 3}, 1},
		{"last clamps", 2, []int{1, 2}, 1},
		{"first", 0, []int{2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(a, b, c)
			s.Select(tt.active)
			if !s.DeleteActive() {
				t.Fatal("DeleteActive returned false")
			}
			if s.Len() != len(tt.wantSizes) {
				t.Fatalf("Len() = %d, want %d", s.Len(), len(tt.wantSizes))
			}
			for i, want := range tt.wantSizes {
				if got := s.Shapes()[i].Size(); got != want {
					t.Errorf("shape %d size = %d, want %d", i, got, want)
				}
			}
			if s.ActiveIndex() != tt.wantActive {
				t.Errorf("ActiveIndex() = %d, want %d", s.ActiveIndex(), tt.wantActive)
			}
		})
	}
}

func TestSceneDeleteToEmpty(t *testing.T) {
	s := NewScene(NewCircleShape(0, 0, 1))
	s.DeleteActive()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Active(); ok {
		t.Error("Active() reported a shape in an empty scene")
	}
	if s.DeleteActive() {
		t.Error("DeleteActive on empty scene returned true")
	}
}

func TestSceneRenderFrame(t *testing.T) {
	s := NewScene(NewCircleShape(0, 0, 1), NewLineShape(0, 0, 10, 1))
	target := &recordingTarget{}
	s.Render(target)
	if target.clears != 1 || target.displays != 1 || len(target.primitives) != 2 {
		t.Errorf("clears/displays/primitives = %d/%d/%d, want 1/1/2",
			target.clears, target.displays, len(target.primitives))
	}
}
