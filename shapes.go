package main

import (
	"image/color"
	"math"
)

// Shape is the set of operations every drawable element supports.
// Variants that have no use for an operation implement it as a no-op.
type Shape interface {
	Draw(target RenderTarget)
	Move(dx, dy int)
	SetColor(c color.RGBA)
	SetSize(size int)
	SetSizeWithDimensions(length, width int)
	SetVisible(visible bool)
	Color() color.RGBA
	Size() int
	Clone() Shape
}

// LineShape is a thin rectangle drawn only by its outline.
type LineShape struct {
	rect Primitive
}

func NewLineShape(x, y int, length, width float64) *LineShape {
	return &LineShape{
		rect: Primitive{
			Kind:             PrimitiveRect,
			X:                float64(x),
			Y:                float64(y),
			Width:            length,
			Height:           width,
			Fill:             colorTransparent,
			Outline:          colorWhite,
			OutlineThickness: 1,
		},
	}
}

func (l *LineShape) Draw(target RenderTarget) {
	target.Draw(l.rect)
}

func (l *LineShape) Move(dx, dy int) {
	l.rect.X += float64(dx)
	l.rect.Y += float64(dy)
}

// SetColor is ignored; a line only changes color through SetVisible.
func (l *LineShape) SetColor(color.RGBA) {}

func (l *LineShape) SetSize(size int) {
	l.rect.Width = float64(size)
	l.rect.Height = 1
}

func (l *LineShape) SetSizeWithDimensions(length, width int) {
	l.rect.Width = float64(length)
	l.rect.Height = float64(width)
}

func (l *LineShape) SetVisible(visible bool) {
	l.rect.Outline = visibilityColor(visible)
}

func (l *LineShape) Color() color.RGBA {
	return l.rect.Outline
}

func (l *LineShape) Size() int {
	return int(l.rect.Width)
}

func (l *LineShape) Clone() Shape {
	c := *l
	return &c
}

// CircleShape is a filled circle; its size is the radius.
type CircleShape struct {
	circle Primitive
}

func NewCircleShape(x, y, radius int) *CircleShape {
	return &CircleShape{
		circle: Primitive{
			Kind:       PrimitivePolygon,
			X:          float64(x),
			Y:          float64(y),
			Radius:     float64(radius),
			PointCount: circlePointCount,
			Fill:       colorWhite,
		},
	}
}

func (c *CircleShape) Draw(target RenderTarget) {
	target.Draw(c.circle)
}

func (c *CircleShape) Move(dx, dy int) {
	c.circle.X += float64(dx)
	c.circle.Y += float64(dy)
}

func (c *CircleShape) SetColor(col color.RGBA) {
	c.circle.Fill = col
}

func (c *CircleShape) SetSize(size int) {
	c.circle.Radius = float64(size)
}

// SetSizeWithDimensions uses length as the radius; width is ignored.
func (c *CircleShape) SetSizeWithDimensions(length, _ int) {
	c.circle.Radius = float64(length)
}

func (c *CircleShape) SetVisible(visible bool) {
	c.circle.Fill = visibilityColor(visible)
}

func (c *CircleShape) Color() color.RGBA {
	return c.circle.Fill
}

func (c *CircleShape) Size() int {
	return int(c.circle.Radius)
}

func (c *CircleShape) Clone() Shape {
	cp := *c
	return &cp
}

// DiamondShape is a four-point polygon. SetSize takes the radius while
// Size reports twice the radius.
type DiamondShape struct {
	diamond Primitive
}

func NewDiamondShape(x, y, radius int) *DiamondShape {
	return &DiamondShape{
		diamond: Primitive{
			Kind:       PrimitivePolygon,
			X:          float64(x),
			Y:          float64(y),
			Radius:     float64(radius),
			PointCount: 4,
			Fill:       colorWhite,
		},
	}
}

func (d *DiamondShape) Draw(target RenderTarget) {
	target.Draw(d.diamond)
}

func (d *DiamondShape) Move(dx, dy int) {
	d.diamond.X += float64(dx)
	d.diamond.Y += float64(dy)
}

func (d *DiamondShape) SetColor(col color.RGBA) {
	d.diamond.Fill = col
}

func (d *DiamondShape) SetSize(size int) {
	d.diamond.Radius = float64(size)
}

// SetSizeWithDimensions sets the radius to half the diagonal of a
// length x width rectangle.
func (d *DiamondShape) SetSizeWithDimensions(length, width int) {
	l, w := float64(length), float64(width)
	d.diamond.Radius = math.Sqrt(l*l+w*w) / 2
}

func (d *DiamondShape) SetVisible(visible bool) {
	d.diamond.Fill = visibilityColor(visible)
}

func (d *DiamondShape) Color() color.RGBA {
	return d.diamond.Fill
}

func (d *DiamondShape) Size() int {
	return int(2 * d.diamond.Radius)
}

func (d *DiamondShape) Clone() Shape {
	cp := *d
	return &cp
}

func visibilityColor(visible bool) color.RGBA {
	if visible {
		return colorWhite
	}
	return colorTransparent
}

// shapeName is used by the status line, the clipboard summary and logs.
func shapeName(s Shape) string {
	switch v := s.(type) {
	case *LineShape:
		return "Line"
	case *CircleShape:
		return "Circle"
	case *DiamondShape:
		return "Diamond"
	case *CompositeShape:
		return "Composite(" + shapeName(v.first) + "+" + shapeName(v.second) + ")"
	default:
		return "Shape"
	}
}
