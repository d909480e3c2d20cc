package render

import (
	"html/template"

	"github.com/dothrak/Portfolio-2.0/internal/model"
)

const (
	linkedInIcon = `<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4v-7a6 6 0 0 1 6-6z"/><rect x="2" y="9" width="4" height="12"/><circle cx="4" cy="4" r="2"/></svg>`
	gitHubIcon   = `<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/></svg>`
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"describe":    describe,
		"socialIcon":  socialIcon,
		"socialLabel": socialLabel,
		"mailto":      mailto,
	}
}

// describe prefers the rendered Markdown body over the plain description.
func describe(body template.HTML, text string) template.HTML {
	if body != "" {
		return body
	}
	return template.HTML(template.HTMLEscapeString(text)) //nolint:gosec // escaped above
}

func socialIcon(kind model.SocialKind) template.HTML {
	switch kind {
	case model.LinkedIn:
		return linkedInIcon
	case model.GitHub:
		return gitHubIcon
	}
	return ""
}

func socialLabel(kind model.SocialKind) string {
	switch kind {
	case model.LinkedIn:
		return "LinkedIn"
	case model.GitHub:
		return "GitHub"
	}
	return string(kind)
}

func mailto(addr string) template.URL {
	return template.URL("mailto:" + addr) //nolint:gosec // address validated by model.Content.Validate
}
