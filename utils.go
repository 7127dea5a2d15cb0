package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/atotto/clipboard"
)

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

func colorName(c color.RGBA) string {
	switch c {
	case colorRed:
		return "red"
	case colorWhite:
		return "white"
	case colorBlue:
		return "blue"
	case colorGreen:
		return "green"
	case colorTransparent:
		return "transparent"
	}
	return hexColor(c)
}

// nextColor steps the recolor palette: red, white, blue, green, red.
// Any color outside the palette goes to white.
func nextColor(c color.RGBA) color.RGBA {
	switch c {
	case colorRed:
		return colorWhite
	case colorWhite:
		return colorBlue
	case colorBlue:
		return colorGreen
	case colorGreen:
		return colorRed
	}
	return colorWhite
}

func describeShape(index int, s Shape) string {
	return fmt.Sprintf("%d. %s size %d %s", index+1, shapeName(s), s.Size(), colorName(s.Color()))
}

// sceneSummary lists every shape, marking the active one with '*'.
func sceneSummary(s *Scene) string {
	if s.Len() == 0 {
		return "empty scene"
	}
	var b strings.Builder
	for i, shape := range s.Shapes() {
		marker := " "
		if i == s.ActiveIndex() {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, describeShape(i, shape))
	}
	return strings.TrimRight(b.String(), "\n")
}
