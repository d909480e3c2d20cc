package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Theme is the two-valued display mode of the page.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrUnknownTheme is returned when a theme name is neither light nor dark.
var ErrUnknownTheme = errors.New("unknown theme")

// Parse maps a theme name to a Theme.
func Parse(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}

// Toggle returns the opposite theme. Toggle(Toggle(t)) == t.
func Toggle(t Theme) Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Initialize reads the environment preference once. It returns Dark only
// when src reports a dark preference; an unsupported or failing source,
// or a nil one, yields Light.
func Initialize(src PreferenceSource, logger *zap.Logger) Theme {
	if logger == nil {
		logger = zap.NewNop()
	}
	if src == nil {
		return Light
	}
	dark, err := src.QueryDarkPreference()
	if err != nil {
		logger.Debug("color scheme preference unavailable, using light theme", zap.Error(err))
		return Light
	}
	if dark {
		return Dark
	}
	return Light
}

// Resolver owns the theme state of one page view. It is initialized once
// from the environment and afterwards changed only by Toggle.
type Resolver struct {
	mu      sync.Mutex
	current Theme
}

// NewResolver runs Initialize against src and holds the result.
func NewResolver(src PreferenceSource, logger *zap.Logger) *Resolver {
	return &Resolver{current: Initialize(src, logger)}
}

// Current returns the held theme.
func (r *Resolver) Current() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Toggle flips the held theme and returns the new value.
func (r *Resolver) Toggle() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = Toggle(r.current)
	return r.current
}
