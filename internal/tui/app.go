package tui

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/page"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/viz"
)

// Rows kept below the canvas for the key hints.
const reservedRows = 1

// FrameMsg is one display refresh. It carries the wall time the scheduler
// is advanced to.
type FrameMsg time.Time

func frame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

type model struct {
	page     *page.Page
	splash   *viz.Splash
	theme    viz.Theme
	styles   viz.Styles
	interval time.Duration

	width    int
	height   int
	scroll   int
	quitting bool
}

type options struct {
	origin time.Time
	seed   int64
}

func newModel(cfg *config.Config, p *content.Profile, opts options) (*model, error) {
	splash := viz.NewSplash(int(time.Second / cfg.FrameInterval()))
	pg, err := page.New(p, splash, rand.New(rand.NewSource(opts.seed)), page.Options{
		Origin:       opts.origin,
		ReservedRows: reservedRows,
	})
	if err != nil {
		return nil, err
	}
	// The terminal size arrives later as a WindowSizeMsg.
	if err := pg.Mount(scene.Viewport{}); err != nil {
		return nil, err
	}
	theme := viz.GetTheme(cfg.Theme)
	return &model{
		page:     pg,
		splash:   splash,
		theme:    theme,
		styles:   viz.NewStyles(theme),
		interval: cfg.FrameInterval(),
		width:    80,
		height:   24,
	}, nil
}

// NewModel mounts the page at the current time.
func NewModel(cfg *config.Config, p *content.Profile) (tea.Model, error) {
	now := time.Now()
	m, err := newModel(cfg, p, options{origin: now, seed: cfg.SeedOr(now.UnixNano())})
	if err != nil {
		return nil, err
	}
	return *m, nil
}

func (m model) Init() tea.Cmd { return frame(m.interval) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.page.Resize.Cells(msg.Width, msg.Height)
		m.scroll = m.clampScroll(m.scroll)
		return m, nil
	case FrameMsg:
		if m.page.Disposed() {
			return m, nil
		}
		m.page.Advance(time.Time(msg))
		return m, frame(m.interval)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.page.Dispose()
		m.quitting = true
		return m, tea.Quit
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
	}

	if !m.page.ShowingContent() {
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		m.scroll = m.clampScroll(m.scroll - 1)
	case "down", "j":
		m.scroll = m.clampScroll(m.scroll + 1)
	case "pgup":
		m.scroll = m.clampScroll(m.scroll - m.bodyHeight())
	case "pgdown":
		m.scroll = m.clampScroll(m.scroll + m.bodyHeight())
	}
	return m, nil
}

func (m model) bodyHeight() int {
	if h := m.height - reservedRows; h > 0 {
		return h
	}
	return 1
}

func (m model) clampScroll(s int) int {
	limit := len(m.contentLines()) - m.bodyHeight()
	if s > limit {
		s = limit
	}
	if s < 0 {
		s = 0
	}
	return s
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.splash.Visible() {
		return m.splash.View(m.theme) + "\n" + m.hints("t theme  q quit")
	}

	lines := m.contentLines()
	end := m.scroll + m.bodyHeight()
	if end > len(lines) {
		end = len(lines)
	}
	var b strings.Builder
	for _, l := range lines[m.scroll:end] {
		b.WriteString(l + "\n")
	}
	b.WriteString(m.hints(fmt.Sprintf("↑↓ scroll  t theme (%s)  q quit", m.theme.Name)))
	return b.String()
}

func (m model) hints(s string) string {
	return m.styles.KeyHint.Render("  " + s)
}

func (m model) contentLines() []string {
	return strings.Split(renderContent(m.page, m.theme, m.styles, m.width), "\n")
}

// Run starts the full-screen terminal page. Setting FOLIO_DEBUG to a file
// path sends the log there.
func Run(cfg *config.Config, p *content.Profile) error {
	if path := os.Getenv("FOLIO_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "folio")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := NewModel(cfg, p)
	if err != nil {
		return err
	}
	log.Printf("tui: theme=%s fps=%d", cfg.Theme, int(time.Second/cfg.FrameInterval()))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
