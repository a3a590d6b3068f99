package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the content page styles derived from a theme.
type Styles struct {
	Prompt   lipgloss.Style
	Cursor   lipgloss.Style
	Role     lipgloss.Style
	Section  lipgloss.Style
	Card     lipgloss.Style
	CardHead lipgloss.Style
	Label    lipgloss.Style
	Item     lipgloss.Style
	Bullet   lipgloss.Style
	Button   lipgloss.Style
	Outline  lipgloss.Style
	Subtle   lipgloss.Style
	KeyHint  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor: lipgloss.NewStyle().Foreground(t.Primary),
		Role:   lipgloss.NewStyle().Foreground(t.Secondary),
		// Header with decorative line
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		CardHead: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(t.Muted),
		Item:     lipgloss.NewStyle().Foreground(t.Text),
		Bullet:   lipgloss.NewStyle().Foreground(t.Primary),
		Button: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2),
		Outline: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		style := lipgloss.NewStyle().Foreground(Blend(startColor, endColor, t))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// Blend interpolates between two hex colors; t=0 gives from, t=1 gives to.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	sr, sg, sb := parseHex(string(from))
	er, eg, eb := parseHex(string(to))
	r := int(float64(sr) + t*float64(er-sr) + 0.5)
	g := int(float64(sg) + t*float64(eg-sg) + 0.5)
	b := int(float64(sb) + t*float64(eb-sb) + 0.5)
	return lipgloss.Color(hexColor(r, g, b))
}

// Separator is a decorative rule of the given width.
func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return style.Render(left + " ◆ " + right)
}

// RGB splits a "#rrggbb" color into channels. Anything else is white.
func RGB(c lipgloss.Color) (r, g, b int) { return parseHex(string(c)) }

// Helper functions
func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
