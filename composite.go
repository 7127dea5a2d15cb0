package main

import "image/color"

// CompositeShape groups two shapes it owns exclusively. Its size is the
// integer mean of the children's sizes at the last size-affecting call.
type CompositeShape struct {
	first  Shape
	second Shape
	size   int
}

func NewCompositeShape(first, second Shape) *CompositeShape {
	return &CompositeShape{
		first:  first,
		second: second,
		size:   (first.Size() + second.Size()) / 2,
	}
}

func (c *CompositeShape) Draw(target RenderTarget) {
	c.first.Draw(target)
	c.second.Draw(target)
}

func (c *CompositeShape) Move(dx, dy int) {
	c.first.Move(dx, dy)
	c.second.Move(dx, dy)
}

func (c *CompositeShape) SetColor(col color.RGBA) {
	c.first.SetColor(col)
	c.second.SetColor(col)
}

func (c *CompositeShape) SetSize(size int) {
	c.first.SetSize(size)
	c.second.SetSize(size)
	c.size = size
}

// SetSizeWithDimensions discards its arguments and equalizes both
// children to the mean of their current sizes.
func (c *CompositeShape) SetSizeWithDimensions(_, _ int) {
	mean := (c.first.Size() + c.second.Size()) / 2
	c.first.SetSize(mean)
	c.second.SetSize(mean)
	c.size = mean
}

func (c *CompositeShape) SetVisible(visible bool) {
	c.first.SetVisible(visible)
	c.second.SetVisible(visible)
}

// Color reports the first child's color only.
func (c *CompositeShape) Color() color.RGBA {
	return c.first.Color()
}

func (c *CompositeShape) Size() int {
	return c.size
}

func (c *CompositeShape) Clone() Shape {
	return &CompositeShape{
		first:  c.first.Clone(),
		second: c.second.Clone(),
		size:   c.size,
	}
}

// Children returns the two grouped shapes in combine order.
func (c *CompositeShape) Children() (Shape, Shape) {
	return c.first, c.second
}
