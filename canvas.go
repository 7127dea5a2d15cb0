package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// RenderTarget receives the primitives of one frame.
type RenderTarget interface {
	Clear()
	Draw(p Primitive)
	Display()
}

type PrimitiveKind int

const (
	PrimitiveRect PrimitiveKind = iota
	PrimitivePolygon
)

// Primitive is a rectangle or a regular polygon positioned by the top-left
// corner of its bounding box, in world coordinates.
type Primitive struct {
	Kind             PrimitiveKind
	X, Y             float64
	Width, Height    float64 // rect
	Radius           float64 // polygon
	PointCount       int     // polygon
	Fill             color.RGBA
	Outline          color.RGBA
	OutlineThickness float64
}

type vertex struct {
	X, Y float64
}

// Vertices returns the outline of the primitive in world coordinates.
// Polygon points start at the top and run clockwise.
func (p Primitive) Vertices() []vertex {
	switch p.Kind {
	case PrimitiveRect:
		return []vertex{
			{p.X, p.Y},
			{p.X + p.Width, p.Y},
			{p.X + p.Width, p.Y + p.Height},
			{p.X, p.Y + p.Height},
		}
	case PrimitivePolygon:
		if p.PointCount < 3 {
			return nil
		}
		verts := make([]vertex, p.PointCount)
		for i := range verts {
			angle := float64(i)*2*math.Pi/float64(p.PointCount) - math.Pi/2
			verts[i] = vertex{
				X: p.X + p.Radius + p.Radius*math.Cos(angle),
				Y: p.Y + p.Radius + p.Radius*math.Sin(angle),
			}
		}
		return verts
	}
	return nil
}

// rasterTarget rasterizes primitives with gg into an off-screen image.
// World coordinates are scaled into the pixel grid.
type rasterTarget struct {
	dc    *gg.Context
	scale float64
	frame *image.RGBA
}

func newRasterTarget(width, height int, scale float64) *rasterTarget {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &rasterTarget{
		dc:    gg.NewContext(width, height),
		scale: scale,
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (r *rasterTarget) Clear() {
	r.dc.Identity()
	r.dc.SetColor(colorBackground)
	r.dc.Clear()
	r.dc.Scale(r.scale, r.scale)
}

func (r *rasterTarget) Draw(p Primitive) {
	verts := p.Vertices()
	if len(verts) == 0 {
		return
	}

	dc := r.dc
	dc.NewSubPath()
	dc.MoveTo(verts[0].X, verts[0].Y)
	for _, v := range verts[1:] {
		dc.LineTo(v.X, v.Y)
	}
	dc.ClosePath()

	if p.Fill.A > 0 {
		dc.SetColor(p.Fill)
		dc.FillPreserve()
	}
	if p.OutlineThickness > 0 && p.Outline.A > 0 {
		// Keep outlines at least one pixel wide once scaled down.
		width := p.OutlineThickness
		if r.scale > 0 && width*r.scale < 1 {
			width = 1 / r.scale
		}
		dc.SetColor(p.Outline)
		dc.SetLineWidth(width * r.scale)
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

func (r *rasterTarget) Display() {
	xdraw.Draw(r.frame, r.frame.Bounds(), r.dc.Image(), image.Point{}, xdraw.Src)
}

// Frame returns the last displayed frame.
func (r *rasterTarget) Frame() *image.RGBA {
	return r.frame
}

// frameLayout fits the world into a terminal of termWidth x termHeight
// cells. Each cell holds two vertically stacked pixels.
func frameLayout(termWidth, termHeight, reserved, worldWidth, worldHeight int) (int, int, float64) {
	rows := termHeight - reserved
	if rows < 1 {
		rows = 1
	}
	width := termWidth
	if width < 1 {
		width = 1
	}
	height := rows * 2

	scale := math.Min(float64(width)/float64(worldWidth), float64(height)/float64(worldHeight))
	return width, height, scale
}

type cellColors struct {
	top, bottom color.RGBA
}

// halfBlockLines turns a frame into terminal lines of '▀' cells, top pixel
// as foreground and bottom pixel as background.
func halfBlockLines(img *image.RGBA) []string {
	b := img.Bounds()
	styles := make(map[cellColors]lipgloss.Style)
	style := func(c cellColors) lipgloss.Style {
		s, ok := styles[c]
		if !ok {
			s = lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(c.top))).
				Background(lipgloss.Color(hexColor(c.bottom)))
			styles[c] = s
		}
		return s
	}

	lines := make([]string, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var line strings.Builder
		run := 0
		var current cellColors
		for x := b.Min.X; x < b.Max.X; x++ {
			cell := cellColors{top: img.RGBAAt(x, y), bottom: colorBackground}
			if y+1 < b.Max.Y {
				cell.bottom = img.RGBAAt(x, y+1)
			}
			if run > 0 && cell != current {
				line.WriteString(style(current).Render(strings.Repeat("▀", run)))
				run = 0
			}
			current = cell
			run++
		}
		if run > 0 {
			line.WriteString(style(current).Render(strings.Repeat("▀", run)))
		}
		lines = append(lines, line.String())
	}
	return lines
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
