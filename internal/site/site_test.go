package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dothrak/Portfolio-2.0/internal/config"
	"github.com/dothrak/Portfolio-2.0/internal/render"
	"github.com/dothrak/Portfolio-2.0/internal/theme"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.New()
	cfg.OutputDir = filepath.Join(root, "dist")
	cfg.ContentDir = filepath.Join(root, "content")
	cfg.StaticDir = filepath.Join(root, "static")
	return cfg
}

func writeTestFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestBuildWritesPage(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	writeTestFile(t, filepath.Join(cfg.StaticDir, "pp.jpg"), "jpeg")
	writeTestFile(t, filepath.Join(cfg.StaticDir, "img", "logo.svg"), "<svg/>")

	res, err := Build(context.Background(), cfg, zap.NewNop(), WithClock(render.FixedYear(2031)))
	require.NoError(t, err)

	assert.Equal(t, cfg.OutputDir, res.OutputDir)
	assert.Equal(t, []string{"index.html"}, res.Pages)
	assert.Equal(t, 2, res.Assets)

	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `data-theme="light"`)
	assert.Contains(t, string(page), "© 2031 Myriam Ouraou")
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "img", "logo.svg"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "portfolio.md"))
	assert.NotContains(t, string(page), "googletagmanager.com", "analytics is opt-in")
}

func TestBuildWithAnalytics(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.AnalyticsID = "G-TEST123"

	_, err := Build(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "googletagmanager.com/gtag/js?id=G-TEST123")
}

func TestBuildDarkThemeAndMarkdown(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Theme = "dark"
	cfg.Markdown = true
	cfg.SiteTitle = "Custom Title"

	res, err := Build(context.Background(), cfg, zap.NewNop(), WithClock(render.FixedYear(2031)))
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "portfolio.md"}, res.Pages)
	assert.Zero(t, res.Assets)

	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `data-theme="dark"`)
	assert.Contains(t, string(page), "<title>Custom Title</title>")

	md, err := os.ReadFile(filepath.Join(cfg.OutputDir, "portfolio.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(md), "# "))
}

func TestBuildCleansOutput(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	stale := filepath.Join(cfg.OutputDir, "stale.html")
	writeTestFile(t, stale, "old")

	_, err := Build(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}

func TestBuildKeepsGeneratedPageOverStatic(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	writeTestFile(t, filepath.Join(cfg.StaticDir, "index.html"), "static copy")

	res, err := Build(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, res.Assets)

	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.NotEqual(t, "static copy", string(page))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Theme = "sepia"

	_, err := New(cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidTheme)
}

func TestNewRejectsInvalidContent(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	writeTestFile(t, filepath.Join(cfg.ContentDir, "projects", "broken.md"),
		"---\ntitle: Broken\nstatus: abandoned\n---\nBody\n")

	_, err := New(cfg, zap.NewNop())
	require.Error(t, err)
}

func TestBuildCanceled(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	writeTestFile(t, filepath.Join(cfg.StaticDir, "pp.jpg"), "jpeg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, cfg, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderPageFollowsTheme(t *testing.T) {
	t.Parallel()

	s, err := New(testConfig(t), zap.NewNop(), WithClock(render.FixedYear(2031)))
	require.NoError(t, err)

	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		var b strings.Builder
		require.NoError(t, s.RenderPage(&b, th))
		assert.Contains(t, b.String(), `data-theme="`+th.String()+`"`)
	}
}

func TestBuildRefusesToRemoveSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		want   error
	}{
		{name: "output is static", mutate: func(cfg *config.Config) { cfg.OutputDir = cfg.StaticDir }, want: config.ErrOutputOverlapsStatic},
		{name: "output contains static", mutate: func(cfg *config.Config) {
			cfg.StaticDir = filepath.Join(cfg.OutputDir, "assets")
		}, want: config.ErrOutputOverlapsStatic},
		{name: "output is project root", mutate: func(cfg *config.Config) { cfg.OutputDir = filepath.Dir(cfg.StaticDir) }, want: config.ErrOutputOverlapsContent},
		{name: "output contains content", mutate: func(cfg *config.Config) {
			cfg.ContentDir = filepath.Join(cfg.OutputDir, "content")
		}, want: config.ErrOutputOverlapsContent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig(t)
			tt.mutate(&cfg)
			asset := filepath.Join(cfg.StaticDir, "pp.jpg")
			writeTestFile(t, asset, "jpeg")
			page := filepath.Join(cfg.ContentDir, "projects", "tool.md")
			writeTestFile(t, page, "---\ntitle: Tool\nstatus: done\n---\nBody\n")

			_, err := Build(context.Background(), cfg, zap.NewNop())
			require.ErrorIs(t, err, tt.want)
			assert.FileExists(t, asset)
			assert.FileExists(t, page)
		})
	}
}
