package main

import "testing"

func TestCompositeSizeIsMean(t *testing.T) {
	line := NewLineShape(0, 0, 100, 10) // size 100
	circle := NewCircleShape(0, 0, 51)  // size 51
	c := NewCompositeShape(line, circle)
	if got := c.Size(); got != 75 {
		t.Errorf("Size() = %d, want 75", got)
	}
}

func TestCompositeSetSizeAppliesToBoth(t *testing.T) {
	c := NewCompositeShape(NewCircleShape(0, 0, 10), NewCircleShape(0, 0, 30))
	c.SetSize(7)
	first, second := c.Children()
	if first.Size() != 7 || second.Size() != 7 || c.Size() != 7 {
		t.Errorf("sizes = %d/%d/%d, want 7/7/7", first.Size(), second.Size(), c.Size())
	}
}

func TestCompositeSetSizeWithDimensionsIgnoresArguments(t *testing.T) {
	c := NewCompositeShape(NewCircleShape(0, 0, 10), NewCircleShape(0, 0, 30))
	first, second := c.Children()
	second.SetSize(40)

	c.SetSizeWithDimensions(1000, 1000)
	if c.Size() != 25 || first.Size() != 25 || second.Size() != 25 {
		t.Errorf("sizes = %d/%d/%d, want 25/25/25", first.Size(), second.Size(), c.Size())
	}
}

func TestCompositeColorIsFirstChild(t *testing.T) {
	line := NewLineShape(0, 0, 100, 10)
	circle := NewCircleShape(0, 0, 10)
	c := NewCompositeShape(line, circle)

	c.SetColor(colorBlue)
	if got := c.Color(); got != colorWhite {
		t.Errorf("Color() = %v, want the line's white", got)
	}
	if got := circle.Color(); got != colorBlue {
		t.Errorf("circle color = %v, want blue", got)
	}
}

func TestCompositeForwards(t *testing.T) {
	inner := NewCompositeShape(NewCircleShape(0, 0, 10), NewDiamondShape(0, 0, 10))
	outer := NewCompositeShape(inner, NewLineShape(0, 0, 100, 10))

	outer.Move(5, -5)
	outer.SetVisible(false)

	target := &recordingTarget{}
	outer.Draw(target)
	if len(target.primitives) != 3 {
		t.Fatalf("got %d primitives, want 3", len(target.primitives))
	}
	for i, p := range target.primitives {
		if p.X != 5 || p.Y != -5 {
			t.Errorf("primitive %d at (%v,%v), want (5,-5)", i, p.X, p.Y)
		}
		if p.Fill.A != 0 || p.Outline.A != 0 {
			t.Errorf("primitive %d still visible: %+v", i, p)
		}
	}
}

func TestCompositeCloneIsDeep(t *testing.T) {
	c := NewCompositeShape(NewCircleShape(0, 0, 10), NewCircleShape(0, 0, 20))
	clone := c.Clone().(*CompositeShape)
	clone.SetSize(3)

	first, second := c.Children()
	if first.Size() != 10 || second.Size() != 20 || c.Size() != 15 {
		t.Errorf("source changed: %d/%d/%d", first.Size(), second.Size(), c.Size())
	}
}
