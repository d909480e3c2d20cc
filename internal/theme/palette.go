package theme

import (
	"fmt"
	"strings"
)

// Tokens are the color slots of the top-level style scope.
type Tokens struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	AccentSoft string
	Border     string
	Surface    string
}

var palettes = map[Theme]Tokens{
	Light: {
		Background: "#ffffff",
		Foreground: "#0f172a",
		Muted:      "#475569",
		Accent:     "#db2777",
		AccentSoft: "#fff5f7",
		Border:     "#f1f5f9",
		Surface:    "#fdf2f8",
	},
	Dark: {
		Background: "#0b0b10",
		Foreground: "#e2e8f0",
		Muted:      "#cbd5e1",
		Accent:     "#f472b6",
		AccentSoft: "rgba(255,45,156,0.06)",
		Border:     "#1e293b",
		Surface:    "rgba(131,24,67,0.2)",
	},
}

// Palette returns the color tokens of t. Unknown themes get the light palette.
func Palette(t Theme) Tokens {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Light]
}

// CSS renders every palette as custom properties scoped by data-theme.
func CSS() string {
	var b strings.Builder
	for _, t := range []Theme{Light, Dark} {
		p := palettes[t]
		fmt.Fprintf(&b, "[data-theme=%q]{", string(t))
		fmt.Fprintf(&b, "--bg:%s;--fg:%s;--muted:%s;--accent:%s;--accent-soft:%s;--border:%s;--surface:%s}",
			p.Background, p.Foreground, p.Muted, p.Accent, p.AccentSoft, p.Border, p.Surface)
	}
	return b.String()
}
