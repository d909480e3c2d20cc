package model

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

var (
	// ErrEmptyTitle is returned when a record has no title.
	ErrEmptyTitle = errors.New("empty title")
	// ErrUnknownStatus is returned for a project status other than done or in progress.
	ErrUnknownStatus = errors.New("unknown project status")
	// ErrUnknownVisibility is returned for a visibility other than public or private.
	ErrUnknownVisibility = errors.New("unknown project visibility")
	// ErrInvalidLink is returned when a link is not an absolute http(s) URL.
	ErrInvalidLink = errors.New("invalid link")
	// ErrInvalidEmail is returned when the contact address cannot be parsed.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Content is the corpus of facts displayed on the page. It is built once
// and never mutated; accessors return copies.
type Content struct {
	profile      Profile
	languages    []Language
	socials      []SocialLink
	timeline     []TimelineStep
	glossary     []GlossaryEntry
	research     []ResearchAxis
	publications []Publication
	projects     []Project
}

// Sections groups the values used to build a Content.
type Sections struct {
	Profile      Profile
	Languages    []Language
	Socials      []SocialLink
	Timeline     []TimelineStep
	Glossary     []GlossaryEntry
	Research     []ResearchAxis
	Publications []Publication
	Projects     []Project
}

// NewContent copies s into an immutable Content.
func NewContent(s Sections) *Content {
	return &Content{
		profile:      s.Profile,
		languages:    clone(s.Languages),
		socials:      clone(s.Socials),
		timeline:     clone(s.Timeline),
		glossary:     clone(s.Glossary),
		research:     clone(s.Research),
		publications: clone(s.Publications),
		projects:     clone(s.Projects),
	}
}

// Sections returns a copy of every section, suitable for building a
// modified Content with NewContent.
func (c *Content) Sections() Sections {
	return Sections{
		Profile:      c.profile,
		Languages:    c.Languages(),
		Socials:      c.Socials(),
		Timeline:     c.Timeline(),
		Glossary:     c.Glossary(),
		Research:     c.Research(),
		Publications: c.Publications(),
		Projects:     c.Projects(),
	}
}

// Profile returns the owner-specific text.
func (c *Content) Profile() Profile { return c.profile }
func (c *Content) Languages() []Language { return clone(c.languages) }
func (c *Content) Socials() []SocialLink { return clone(c.socials) }
func (c *Content) Timeline() []TimelineStep { return clone(c.timeline) }
func (c *Content) Glossary() []GlossaryEntry { return clone(c.glossary) }
func (c *Content) Research() []ResearchAxis { return clone(c.research) }
func (c *Content) Publications() []Publication { return clone(c.publications) }
func (c *Content) Projects() []Project { return clone(c.projects) }

// Validate checks every record and reports all problems at once.
// Public projects without a link are accepted; they render as non-public.
func (c *Content) Validate() error {
	var errs []error

	if strings.TrimSpace(c.profile.SiteTitle) == "" {
		errs = append(errs, fmt.Errorf("profile: site title: %w", ErrEmptyTitle))
	}
	if c.profile.Email != "" {
		if _, err := mail.ParseAddress(c.profile.Email); err != nil {
			errs = append(errs, fmt.Errorf("profile: %w: %q", ErrInvalidEmail, c.profile.Email))
		}
	}
	for i, s := range c.socials {
		if err := checkLink(s.URL); err != nil {
			errs = append(errs, fmt.Errorf("socials[%d]: %w", i, err))
		}
	}
	for i, step := range c.timeline {
		if strings.TrimSpace(step.Title) == "" {
			errs = append(errs, fmt.Errorf("timeline[%d]: %w", i, ErrEmptyTitle))
		}
	}
	for i, a := range c.research {
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, fmt.Errorf("research[%d]: %w", i, ErrEmptyTitle))
		}
	}
	for i, p := range c.publications {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("publications[%d]: %w", i, ErrEmptyTitle))
		}
		if err := checkLink(p.Link); err != nil {
			errs = append(errs, fmt.Errorf("publications[%d]: %w", i, err))
		}
	}
	for i, p := range c.projects {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: %w", i, ErrEmptyTitle))
		}
		if _, err := ParseStatus(string(p.Status)); err != nil {
			errs = append(errs, fmt.Errorf("projects[%d]: %w", i, err))
		}
		if _, err := ParseVisibility(string(p.Visibility)); err != nil {
			errs = append(errs, fmt.Errorf("projects[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

func checkLink(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidLink, raw)
	}
	return nil
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
