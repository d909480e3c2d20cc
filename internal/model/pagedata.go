package model

import "html/template"

// PageData is the context handed to the page layouts.
type PageData struct {
	Theme       string
	ThemeIcon   string
	BasePath    string
	Year        int
	AnalyticsID string

	Profile      Profile
	Languages    []Language
	Socials      []SocialLink
	Timeline     []TimelineStep
	Glossary     []GlossaryEntry
	Research     []ResearchAxis
	Publications []Publication
	Projects     []ProjectCard

	Palette template.CSS
}

// ProjectCard is a Project with its rendering decisions resolved.
type ProjectCard struct {
	Project
	BadgeClass string
	ShowLink   bool
}
