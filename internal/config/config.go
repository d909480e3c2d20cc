package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/dothrak/Portfolio-2.0/internal/theme"
)

// Default configuration values.
const (
	AppName = "portfolio"

	DefaultOutputDir  = "dist"
	DefaultBaseURL    = "."
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultTheme      = "light"
	DefaultPort       = 1313
)

// Config holds the settings of a build or serve run.
type Config struct {
	SiteTitle   string `mapstructure:"siteTitle"`
	OutputDir   string `mapstructure:"outputDir"`
	BaseURL     string `mapstructure:"baseURL"`
	ContentDir  string `mapstructure:"contentDir"`
	StaticDir   string `mapstructure:"staticDir"`
	Theme       string `mapstructure:"theme"`
	AnalyticsID string `mapstructure:"analyticsID"`
	Markdown    bool   `mapstructure:"markdown"`
	Port        int    `mapstructure:"port"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Defaults returns the defaults keyed the way they appear in config.yaml.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"siteTitle":   "",
		"outputDir":   DefaultOutputDir,
		"baseURL":     DefaultBaseURL,
		"contentDir":  DefaultContentDir,
		"staticDir":   DefaultStaticDir,
		"theme":       DefaultTheme,
		"analyticsID": "",
		"markdown":    false,
		"port":        DefaultPort,
		"verbose":     false,
	}
}

// New returns a Config populated with the defaults.
func New() Config {
	return Config{
		OutputDir:  DefaultOutputDir,
		BaseURL:    DefaultBaseURL,
		ContentDir: DefaultContentDir,
		StaticDir:  DefaultStaticDir,
		Theme:      DefaultTheme,
		Port:       DefaultPort,
	}
}

// XDGConfigDir is searched for config.yaml after the working directory.
// On Linux: ~/.config/portfolio
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// BuildTheme parses the configured build theme.
func (c Config) BuildTheme() (theme.Theme, error) {
	return theme.Parse(c.Theme)
}

// Validate checks the configuration and returns the first problem found.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrEmptyOutputDir
	}
	if filepath.Clean(c.OutputDir) == "." || filepath.Clean(c.OutputDir) == "/" {
		return ErrUnsafeOutputDir
	}
	// The build removes the output directory, so it must not hold any source.
	if c.ContentDir != "" && overlaps(c.OutputDir, c.ContentDir) {
		return ErrOutputOverlapsContent
	}
	if c.StaticDir != "" && overlaps(c.OutputDir, c.StaticDir) {
		return ErrOutputOverlapsStatic
	}
	if _, err := c.BuildTheme(); err != nil {
		return ErrInvalidTheme
	}
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}

func overlaps(a, b string) bool {
	return within(a, b) || within(b, a)
}

// within reports whether path is dir or lies below it. Both are resolved
// against the working directory first.
func within(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
