package model

import "html/template"

// TimelineStep represents one stage of education or career.
type TimelineStep struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Period      string `yaml:"period"`

	// Body is the rendered Markdown description. When set it is shown
	// instead of Description.
	Body template.HTML `yaml:"-"`
}

// ResearchAxis is one research interest shown in the research grid.
type ResearchAxis struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Body        template.HTML `yaml:"-"`
}

// Publication is a published paper with the venue it appeared in.
type Publication struct {
	Title       string        `yaml:"title"`
	Venue       string        `yaml:"venue"`
	Link        string        `yaml:"link"`
	Description string        `yaml:"description"`
	Body        template.HTML `yaml:"-"`
}

// Project is a piece of work shown in the projects grid. Link is optional.
type Project struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Link        string     `yaml:"link"`
	Visibility  Visibility `yaml:"visibility"`
	Status      Status     `yaml:"status"`

	Body template.HTML `yaml:"-"`
}

// HasPublicLink reports whether the project may show its external link.
// A public project without a link falls back to the non-public badge.
func (p Project) HasPublicLink() bool {
	return p.Visibility == Public && p.Link != ""
}

// Profile holds the owner-specific text of the page.
type Profile struct {
	Name        string `yaml:"name"`
	SiteTitle   string `yaml:"siteTitle"`
	Description string `yaml:"description"`
	Tagline     string `yaml:"tagline"`
	Headline    string `yaml:"headline"`
	Bio         string `yaml:"bio"`
	Email       string `yaml:"email"`
	Portrait    string `yaml:"portrait"`
	ContactText string `yaml:"contactText"`
}

// Language is a spoken-language badge in the hero section.
type Language struct {
	Flag string `yaml:"flag"`
	Name string `yaml:"name"`
}

// SocialKind names a supported external profile.
type SocialKind string

const (
	LinkedIn SocialKind = "linkedin"
	GitHub   SocialKind = "github"
)

// SocialLink points at an external profile.
type SocialLink struct {
	Kind SocialKind `yaml:"kind"`
	URL  string     `yaml:"url"`
}

// GlossaryEntry expands an abbreviation used in the timeline.
type GlossaryEntry struct {
	Term    string `yaml:"term"`
	Meaning string `yaml:"meaning"`
}
