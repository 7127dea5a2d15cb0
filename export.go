package main

import (
	"fmt"
	"time"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportPNG renders the scene at world size with a shape legend in the
// top-left corner and writes it to filename.
func exportPNG(scene *Scene, filename string, worldWidth, worldHeight int) error {
	if scene.Len() == 0 {
		return fmt.Errorf("nothing to export")
	}

	target := newRasterTarget(worldWidth, worldHeight, 1)
	scene.Render(target)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}

	fontSize := 12.0
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	dc := target.dc
	dc.Identity()
	dc.SetFontFace(face)
	dc.SetColor(colorWhite)
	lineHeight := fontSize * 1.4
	for i, shape := range scene.Shapes() {
		label := describeShape(i, shape)
		if i == scene.ActiveIndex() {
			label += " (active)"
		}
		dc.DrawString(label, 8, lineHeight*float64(i+1))
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

func exportFilename(now time.Time) string {
	return fmt.Sprintf("shapes-%s.png", now.Format("20060102-150405"))
}

func (m *model) exportScene() {
	path, err := m.config.GetSavePath(exportFilename(time.Now()))
	if err == nil {
		err = exportPNG(m.scene, path, m.config.WorldWidth, m.config.WorldHeight)
	}
	if err != nil {
		m.errorMessage = err.Error()
		m.logger.Warn("export failed", "err", err)
		return
	}
	m.successMessage = "Exported " + path
	m.printLine("Exported scene to " + path)
	m.logger.Info("exported scene", "path", path, "shapes", m.scene.Len())
}

func (m *model) copySummary() {
	summary := sceneSummary(m.scene)
	if err := m.copyToClipboard(summary); err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		m.logger.Warn("clipboard copy failed", "err", err)
		return
	}
	m.successMessage = "Copied scene summary"
	m.logger.Debug("copied scene summary", "shapes", m.scene.Len())
}
