// Package server renders the portfolio page over HTTP.
package server

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/viz"
)

const (
	MaxTicks     = 100000
	MaxDimension = 2048

	defaultWidth  = 640
	defaultHeight = 400
)

type Options struct {
	Seed  int64
	Theme viz.Theme
	// Quiet drops the request logger.
	Quiet bool
}

type server struct {
	profile *content.Profile
	opts    Options
}

// New returns the gin engine serving p.
func New(p *content.Profile, opts Options) *gin.Engine {
	if p == nil {
		p = content.Default()
	}
	if opts.Theme.Name == "" {
		opts.Theme = viz.ThemeTerminal
	}
	s := &server{profile: p, opts: opts}

	r := gin.New()
	r.Use(gin.Recovery())
	if !opts.Quiet {
		r.Use(gin.Logger())
	}
	r.SetHTMLTemplate(template.Must(template.New("index.html").Parse(indexHTML)))

	r.GET("/", s.index)
	r.GET("/api/profile", s.apiProfile)
	r.GET("/splash.svg", s.splash)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func (s *server) index(c *gin.Context) {
	t := s.opts.Theme
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":    s.profile,
		"seed":       s.opts.Seed,
		"background": string(t.Background),
		"text":       string(t.Text),
		"primary":    string(t.Primary),
		"muted":      string(t.Muted),
	})
}

func (s *server) apiProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.profile)
}

func (s *server) splash(c *gin.Context) {
	ticks, ok := intQuery(c, "tick", 0, 0, MaxTicks)
	if !ok {
		return
	}
	w, ok := intQuery(c, "w", defaultWidth, 1, MaxDimension)
	if !ok {
		return
	}
	h, ok := intQuery(c, "h", defaultHeight, 1, MaxDimension)
	if !ok {
		return
	}
	seed := s.opts.Seed
	if v := c.Query("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seed"})
			return
		}
		seed = n
	}

	snap, err := export.RenderContext(c.Request.Context(), export.Options{
		Seed:   seed,
		Ticks:  ticks,
		Width:  w,
		Height: h,
		Format: export.Format(c.DefaultQuery("format", string(export.FormatPoints))),
		Theme:  s.opts.Theme,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", []byte(snap.SVG))
}

// intQuery reads an optional bounded integer parameter, answering 400 when
// it is malformed or out of range.
func intQuery(c *gin.Context, key string, def, lo, hi int) (int, bool) {
	v := c.Query(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return n, true
}
