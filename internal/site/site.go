// Package site assembles the content, the layouts and the configuration
// into a static, self-contained output directory.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dothrak/Portfolio-2.0/internal/config"
	"github.com/dothrak/Portfolio-2.0/internal/content"
	"github.com/dothrak/Portfolio-2.0/internal/model"
	"github.com/dothrak/Portfolio-2.0/internal/render"
	"github.com/dothrak/Portfolio-2.0/internal/theme"
)

const (
	indexFile    = "index.html"
	markdownFile = "portfolio.md"
)

// Result describes a finished build.
type Result struct {
	OutputDir string
	Pages     []string
	Assets    int
}

// Site is a loaded portfolio ready to be rendered. It is immutable and
// safe for concurrent use.
type Site struct {
	cfg      config.Config
	content  *model.Content
	page     *render.Renderer
	markdown *render.MarkdownWriter
	logger   *zap.Logger
}

type options struct {
	clock render.Clock
}

// Option configures a Site.
type Option func(*options)

// WithClock fixes the clock used for the footer year.
func WithClock(c render.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New validates cfg, loads the content and parses the layouts.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*Site, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c, err := content.Load(cfg.ContentDir, logger.Named("content"))
	if err != nil {
		return nil, err
	}
	if cfg.SiteTitle != "" {
		sections := c.Sections()
		sections.Profile.SiteTitle = cfg.SiteTitle
		c = model.NewContent(sections)
	}

	page, err := render.New(
		render.WithClock(o.clock),
		render.WithBasePath(cfg.BaseURL),
		render.WithAnalytics(cfg.AnalyticsID),
	)
	if err != nil {
		return nil, err
	}

	return &Site{
		cfg:      cfg,
		content:  c,
		page:     page,
		markdown: render.NewMarkdownWriter(o.clock),
		logger:   logger,
	}, nil
}

// Content returns the loaded corpus.
func (s *Site) Content() *model.Content {
	return s.content
}

// RenderPage writes the page in theme t.
func (s *Site) RenderPage(w io.Writer, t theme.Theme) error {
	return s.page.Render(w, s.content, t)
}

// Build is a shorthand for New followed by Site.Build.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...Option) (Result, error) {
	s, err := New(cfg, logger, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Build(ctx)
}

// Build cleans the output directory, copies static assets and writes the
// page. The page is rendered in the configured theme; the browser then
// applies the visitor's color-scheme preference once on load.
func (s *Site) Build(ctx context.Context) (Result, error) {
	outputDir := s.cfg.OutputDir
	s.logger.Info("starting build",
		zap.String("outputDir", outputDir),
		zap.String("baseURL", s.cfg.BaseURL),
		zap.String("siteTitle", s.content.Profile().SiteTitle),
	)

	s.logger.Debug("cleaning output directory", zap.String("dir", outputDir))
	if err := os.RemoveAll(outputDir); err != nil {
		return Result{}, fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	configured, err := s.cfg.BuildTheme()
	if err != nil {
		return Result{}, err
	}
	initial := theme.Initialize(theme.FromTheme(configured), s.logger)

	res := Result{OutputDir: outputDir, Pages: []string{indexFile}}
	if s.cfg.Markdown {
		res.Pages = append(res.Pages, markdownFile)
	}

	reserved := make(map[string]bool, len(res.Pages))
	for _, p := range res.Pages {
		reserved[p] = true
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.copyStatic(ctx, reserved)
		res.Assets = n
		return err
	})
	g.Go(func() error {
		return writeFile(filepath.Join(outputDir, indexFile), func(w io.Writer) error {
			return s.RenderPage(w, initial)
		})
	})
	if s.cfg.Markdown {
		g.Go(func() error {
			return writeFile(filepath.Join(outputDir, markdownFile), func(w io.Writer) error {
				return s.markdown.Write(w, s.content)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	s.logger.Info("build completed",
		zap.String("outputDir", outputDir),
		zap.Strings("pages", res.Pages),
		zap.Int("assets", res.Assets),
		zap.Stringer("theme", initial),
	)
	return res, nil
}

func (s *Site) copyStatic(ctx context.Context, reserved map[string]bool) (int, error) {
	staticDir := s.cfg.StaticDir
	if staticDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(staticDir); errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("static assets directory not found, skipping copy", zap.String("dir", staticDir))
		return 0, nil
	}
	s.logger.Debug("copying static assets", zap.String("from", staticDir), zap.String("to", s.cfg.OutputDir))
	n, err := copyDirContents(ctx, staticDir, s.cfg.OutputDir, reserved)
	if err != nil {
		return n, fmt.Errorf("failed to copy static assets: %w", err)
	}
	return n, nil
}

// writeFile creates path and fills it with render. A failed render leaves
// no partial file behind.
func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file '%s': %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if err := render(f); err != nil {
		return fmt.Errorf("failed to render '%s': %w", path, err)
	}
	return nil
}
