package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/page"
	"github.com/san-kum/folio/internal/typewriter"
	"github.com/san-kum/folio/internal/viz"
)

const maxContentWidth = 80

func renderContent(pg *page.Page, th viz.Theme, st viz.Styles, width int) string {
	w := width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	p := pg.Profile()

	var b strings.Builder
	b.WriteString("\n")
	for i, e := range pg.Hero {
		b.WriteString("  " + heroLine(e, i, th, st) + "\n")
	}
	b.WriteString("\n")

	if len(p.Links) > 0 {
		buttons := make([]string, 0, len(p.Links))
		for i, l := range p.Links {
			if i == 0 {
				buttons = append(buttons, st.Button.Render(l.Label))
			} else {
				buttons = append(buttons, st.Outline.Render(l.Label))
			}
			buttons = append(buttons, "  ")
		}
		b.WriteString(indent(lipgloss.JoinHorizontal(lipgloss.Center, buttons...)) + "\n")
		for _, l := range p.Links {
			b.WriteString("  " + st.Label.Render(l.Label+": ") + st.Subtle.Render(l.URL) + "\n")
		}
		b.WriteString("\n")
	}

	rule := indent(viz.Separator(w, st.Subtle)) + "\n\n"

	if len(p.Skills) > 0 {
		b.WriteString(rule)
		b.WriteString(indent(st.Section.Render("Skills")) + "\n")
		for _, g := range p.Skills {
			body := st.CardHead.Render(g.Category) + "\n" +
				st.Item.Render(strings.Join(g.Items, " · "))
			b.WriteString(indent(st.Card.Width(w).Render(body)) + "\n")
		}
		b.WriteString("\n")
	}

	if len(p.Experience) > 0 {
		b.WriteString(rule)
		b.WriteString(indent(st.Section.Render("Experience")) + "\n")
		for _, x := range p.Experience {
			var body strings.Builder
			body.WriteString(st.CardHead.Render(x.Role) + st.Label.Render(" @ "+x.Company) + "\n")
			body.WriteString(st.Label.Render(x.Period))
			for _, r := range x.Responsibilities {
				body.WriteString("\n" + st.Bullet.Render("• ") + st.Item.Render(r))
			}
			b.WriteString(indent(st.Card.Width(w).Render(body.String())) + "\n")
		}
		b.WriteString("\n")
	}

	if len(p.Education) > 0 {
		b.WriteString(rule)
		b.WriteString(indent(st.Section.Render("Education")) + "\n")
		for _, e := range p.Education {
			var body strings.Builder
			body.WriteString(st.CardHead.Render(e.Degree+" in "+e.Field) + "\n")
			body.WriteString(st.Label.Render(e.Institution + ", " + e.Year))
			for _, a := range e.Achievements {
				body.WriteString("\n" + st.Bullet.Render("• ") + st.Item.Render(a))
			}
			b.WriteString(indent(st.Card.Width(w).Render(body.String())) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// heroLine is the "> " prompt, the revealed text and the "_" cursor. The
// first line is drawn in the theme gradient.
func heroLine(e *typewriter.Engine, i int, th viz.Theme, st viz.Styles) string {
	cursor := " "
	if e.CursorVisible() {
		cursor = st.Cursor.Render("_")
	}
	text := st.Role.Render(e.Text())
	if i == 0 {
		text = viz.GradientText(e.Text(), th.Primary, th.Accent)
	}
	return st.Prompt.Render("> ") + text + cursor
}

func indent(s string) string {
	return lipgloss.NewStyle().MarginLeft(2).Render(s)
}
