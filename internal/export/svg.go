package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/folio/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64, fg, bg string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	writeHeader(&sb, width, height, bg)
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", fg))

	dotRadius := scale * 0.4
	pw, ph := canvas.PixelSize()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// FrameToSVG draws a particle frame at its own pixel size. Nearer particles
// get larger dots, like size-attenuated point sprites.
func FrameToSVG(f viz.Frame, fg, bg string, opacity float64) string {
	var sb strings.Builder
	writeHeader(&sb, float64(f.Width), float64(f.Height), bg)
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\" fill-opacity=\"%.2f\">\n", fg, opacity))

	ref := 0.0
	if f.Camera != nil {
		ref = f.Camera.Position.Z
	}
	f.Each(func(x, y int, depth float64) {
		r := 1.5
		if ref > 0 && depth > 0 {
			r = 1.5 * ref / depth
		}
		sb.WriteString(fmt.Sprintf("<circle cx=\"%d\" cy=\"%d\" r=\"%.2f\"/>\n", x, y, r))
	})

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func writeHeader(sb *strings.Builder, width, height float64, bg string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg))
}
