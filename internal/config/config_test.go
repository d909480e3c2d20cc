package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dothrak/Portfolio-2.0/internal/theme"
)

func TestNewIsValid(t *testing.T) {
	t.Parallel()

	cfg := New()
	require.NoError(t, cfg.Validate())

	th, err := cfg.BuildTheme()
	require.NoError(t, err)
	assert.Equal(t, theme.Light, th)
}

func TestDefaultsMatchNew(t *testing.T) {
	t.Parallel()

	d := Defaults()
	cfg := New()
	assert.Equal(t, cfg.OutputDir, d["outputDir"])
	assert.Equal(t, cfg.BaseURL, d["baseURL"])
	assert.Equal(t, cfg.ContentDir, d["contentDir"])
	assert.Equal(t, cfg.StaticDir, d["staticDir"])
	assert.Equal(t, cfg.Theme, d["theme"])
	assert.Equal(t, cfg.Port, d["port"])
	assert.Empty(t, cfg.AnalyticsID)
	assert.Equal(t, "", d["analyticsID"])
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "empty output", mutate: func(c *Config) { c.OutputDir = " " }, want: ErrEmptyOutputDir},
		{name: "cwd output", mutate: func(c *Config) { c.OutputDir = "./" }, want: ErrUnsafeOutputDir},
		{name: "root output", mutate: func(c *Config) { c.OutputDir = "/" }, want: ErrUnsafeOutputDir},
		{name: "overlap", mutate: func(c *Config) { c.OutputDir = "content/" }, want: ErrOutputOverlapsContent},
		{name: "content below output", mutate: func(c *Config) { c.OutputDir = "site"; c.ContentDir = "site/content" }, want: ErrOutputOverlapsContent},
		{name: "content absolute", mutate: func(c *Config) { c.OutputDir = absPath(t, "content") }, want: ErrOutputOverlapsContent},
		{name: "static same", mutate: func(c *Config) { c.OutputDir = c.StaticDir }, want: ErrOutputOverlapsStatic},
		{name: "static below output", mutate: func(c *Config) { c.OutputDir = "site"; c.StaticDir = "./site/assets/static" }, want: ErrOutputOverlapsStatic},
		{name: "static absolute", mutate: func(c *Config) { c.OutputDir = "static"; c.StaticDir = absPath(t, "static") }, want: ErrOutputOverlapsStatic},
		{name: "sibling prefix", mutate: func(c *Config) { c.OutputDir = "static-out"; c.ContentDir = "content-src" }, want: nil},
		{name: "output below static", mutate: func(c *Config) { c.OutputDir = "static/dist" }, want: ErrOutputOverlapsStatic},
		{name: "output below content", mutate: func(c *Config) { c.OutputDir = "content/projects" }, want: ErrOutputOverlapsContent},
		{name: "bad theme", mutate: func(c *Config) { c.Theme = "sepia" }, want: ErrInvalidTheme},
		{name: "dark theme", mutate: func(c *Config) { c.Theme = "dark" }, want: nil},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, want: ErrInvalidPort},
		{name: "port too high", mutate: func(c *Config) { c.Port = 70000 }, want: ErrInvalidPort},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := New()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func absPath(t *testing.T, p string) string {
	t.Helper()
	abs, err := filepath.Abs(p)
	require.NoError(t, err)
	return abs
}

func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	assert.Contains(t, XDGConfigDir(), AppName)
}
