// Package render turns the content model and a theme into the portfolio page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/dothrak/Portfolio-2.0/internal/model"
	"github.com/dothrak/Portfolio-2.0/internal/theme"
)

//go:embed layouts
var layoutFS embed.FS

const (
	baseLayout     = "base.html"
	partialsDir    = "layouts/partials"
	defaultBaseDir = "."
)

// Clock supplies the current time. The footer year is read from it.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// FixedYear returns a clock frozen on January 1st of year.
func FixedYear(year int) Clock {
	return ClockFunc(func() time.Time { return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC) })
}

// Renderer renders the page layouts. It is safe for concurrent use.
type Renderer struct {
	tmpl        *template.Template
	clock       Clock
	basePath    string
	analyticsID string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for the footer year.
func WithClock(c Clock) Option {
	return func(r *Renderer) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithBasePath sets the prefix of asset paths such as the portrait.
func WithBasePath(p string) Option {
	return func(r *Renderer) {
		if p = strings.TrimRight(p, "/"); p != "" {
			r.basePath = p
		}
	}
}

// WithAnalytics enables the analytics snippet for the given measurement id.
func WithAnalytics(id string) Option {
	return func(r *Renderer) { r.analyticsID = strings.TrimSpace(id) }
}

// New parses the embedded layouts: base.html first, then every partial.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		clock:    ClockFunc(time.Now),
		basePath: defaultBaseDir,
	}
	for _, opt := range opts {
		opt(r)
	}

	partials, err := fs.Glob(layoutFS, path.Join(partialsDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to list partial layouts: %w", err)
	}
	files := append([]string{path.Join("layouts", baseLayout)}, partials...)

	tmpl, err := template.New(baseLayout).Funcs(funcMap()).ParseFS(layoutFS, files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layouts: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Render writes the page for c in theme t. Output depends only on c, t and
// the clock's current year. Nothing is written if rendering fails.
func (r *Renderer) Render(w io.Writer, c *model.Content, t theme.Theme) error {
	data, err := r.PageData(c, t)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, baseLayout, data); err != nil {
		return fmt.Errorf("failed to execute layout %q: %w", baseLayout, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// PageData resolves every rendering decision for c in theme t. It fails
// with model.ErrUnknownStatus when a project status has no badge.
func (r *Renderer) PageData(c *model.Content, t theme.Theme) (model.PageData, error) {
	if t != theme.Dark {
		t = theme.Light
	}

	cards, err := projectCards(c.Projects())
	if err != nil {
		return model.PageData{}, err
	}

	return model.PageData{
		Theme:        t.String(),
		ThemeIcon:    toggleIcon(t),
		BasePath:     r.basePath,
		Year:         r.clock.Now().Year(),
		AnalyticsID:  r.analyticsID,
		Profile:      c.Profile(),
		Languages:    c.Languages(),
		Socials:      c.Socials(),
		Timeline:     c.Timeline(),
		Glossary:     c.Glossary(),
		Research:     c.Research(),
		Publications: c.Publications(),
		Projects:     cards,
		Palette:      template.CSS(theme.CSS()),
	}, nil
}

// projectCards resolves the badge and link of every project. Statuses are
// normalized so the badge text is always "done" or "in progress".
func projectCards(projects []model.Project) ([]model.ProjectCard, error) {
	cards := make([]model.ProjectCard, 0, len(projects))
	for i, p := range projects {
		status, err := model.ParseStatus(string(p.Status))
		if err != nil {
			return nil, fmt.Errorf("projects[%d] %q: %w", i, p.Title, err)
		}
		p.Status = status
		cards = append(cards, model.ProjectCard{
			Project:    p,
			BadgeClass: BadgeClass(status),
			ShowLink:   p.HasPublicLink(),
		})
	}
	return cards, nil
}

// BadgeClass maps a project status to its badge color class.
func BadgeClass(s model.Status) string {
	if s == model.Done {
		return "badge-done"
	}
	return "badge-progress"
}

func toggleIcon(t theme.Theme) string {
	if t == theme.Light {
		return "🌙"
	}
	return "☀️"
}
