// Package content loads the portfolio corpus from a content directory.
//
// The directory layout is:
//
//	content/
//	  site.yaml          profile, languages, socials, glossary and optional inline sections
//	  timeline/*.md      one file per timeline step
//	  research/*.md      one file per research axis
//	  publications/*.md  one file per publication
//	  projects/*.md      one file per project
//
// Markdown files carry YAML frontmatter (title, period, venue, link,
// visibility, status, weight); the body becomes the description. Every part
// is optional: whatever is missing keeps the built-in corpus.
//
// A project status is required wherever the project is declared. A missing
// visibility means private, both in site.yaml and in frontmatter.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/dothrak/Portfolio-2.0/internal/model"
)

const (
	siteFile        = "site.yaml"
	timelineDir     = "timeline"
	researchDir     = "research"
	publicationsDir = "publications"
	projectsDir     = "projects"
)

// ErrInvalidContent wraps every validation failure of a loaded corpus.
var ErrInvalidContent = errors.New("invalid content")

// site mirrors site.yaml. Nil slices mean "keep the built-in section".
type site struct {
	Profile      *model.Profile        `yaml:"profile"`
	Languages    []model.Language      `yaml:"languages"`
	Socials      []model.SocialLink    `yaml:"socials"`
	Glossary     []model.GlossaryEntry `yaml:"glossary"`
	Timeline     []model.TimelineStep  `yaml:"timeline"`
	Research     []model.ResearchAxis  `yaml:"research"`
	Publications []model.Publication   `yaml:"publications"`
	Projects     []model.Project       `yaml:"projects"`
}

// frontMatter is the metadata block of a Markdown content file.
type frontMatter struct {
	Title      string `yaml:"title"`
	Period     string `yaml:"period"`
	Venue      string `yaml:"venue"`
	Link       string `yaml:"link"`
	Visibility string `yaml:"visibility"`
	Status     string `yaml:"status"`
	Weight     int    `yaml:"weight"`
}

// entry is one parsed Markdown file of a section directory.
type entry struct {
	rel   string
	meta  frontMatter
	text  string
	body  template.HTML
	title string
}

// Loader reads content directories. It is safe for concurrent use.
type Loader struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
		logger: logger,
	}
}

// Load is a shorthand for NewLoader(logger).Load(dir).
func Load(dir string, logger *zap.Logger) (*model.Content, error) {
	return NewLoader(logger).Load(dir)
}

// Load builds the corpus from dir on top of model.Default. An empty or
// missing dir yields the built-in corpus unchanged.
func (l *Loader) Load(dir string) (*model.Content, error) {
	if dir == "" {
		return model.Default(), nil
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("content directory not found, using built-in content", zap.String("dir", dir))
		return model.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat content directory '%s': %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path '%s' is not a directory", dir)
	}

	sections := model.Default().Sections()
	if err := l.applySiteFile(filepath.Join(dir, siteFile), &sections); err != nil {
		return nil, err
	}
	if err := l.applySections(dir, &sections); err != nil {
		return nil, err
	}

	for _, p := range sections.Projects {
		if p.Visibility == model.Public && p.Link == "" {
			l.logger.Warn("public project has no link, it will render as non-public", zap.String("project", p.Title))
		}
	}

	c := model.NewContent(sections)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	l.logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("timeline", len(sections.Timeline)),
		zap.Int("research", len(sections.Research)),
		zap.Int("publications", len(sections.Publications)),
		zap.Int("projects", len(sections.Projects)),
	)
	return c, nil
}

func (l *Loader) applySiteFile(path string, s *model.Sections) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading site file %s: %w", path, err)
	}

	var sf site
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return fmt.Errorf("error unmarshalling site file %s: %w", path, err)
	}

	if sf.Profile != nil {
		s.Profile = *sf.Profile
	}
	if sf.Languages != nil {
		s.Languages = sf.Languages
	}
	if sf.Socials != nil {
		s.Socials = sf.Socials
	}
	if sf.Glossary != nil {
		s.Glossary = sf.Glossary
	}
	if sf.Timeline != nil {
		s.Timeline = sf.Timeline
	}
	if sf.Research != nil {
		s.Research = sf.Research
	}
	if sf.Publications != nil {
		s.Publications = sf.Publications
	}
	if sf.Projects != nil {
		s.Projects = sf.Projects
		for i := range s.Projects {
			if s.Projects[i].Visibility == "" {
				s.Projects[i].Visibility = model.Private
			}
		}
	}
	l.logger.Debug("site file applied", zap.String("path", path))
	return nil
}

func (l *Loader) applySections(dir string, s *model.Sections) error {
	timeline, err := l.readSection(dir, timelineDir)
	if err != nil {
		return err
	}
	if timeline != nil {
		s.Timeline = make([]model.TimelineStep, 0, len(timeline))
		for _, e := range timeline {
			s.Timeline = append(s.Timeline, model.TimelineStep{
				Title: e.title, Period: e.meta.Period, Description: e.text, Body: e.body,
			})
		}
	}

	research, err := l.readSection(dir, researchDir)
	if err != nil {
		return err
	}
	if research != nil {
		s.Research = make([]model.ResearchAxis, 0, len(research))
		for _, e := range research {
			s.Research = append(s.Research, model.ResearchAxis{
				Title: e.title, Description: e.text, Body: e.body,
			})
		}
	}

	pubs, err := l.readSection(dir, publicationsDir)
	if err != nil {
		return err
	}
	if pubs != nil {
		s.Publications = make([]model.Publication, 0, len(pubs))
		for _, e := range pubs {
			s.Publications = append(s.Publications, model.Publication{
				Title: e.title, Venue: e.meta.Venue, Link: e.meta.Link, Description: e.text, Body: e.body,
			})
		}
	}

	projects, err := l.readSection(dir, projectsDir)
	if err != nil {
		return err
	}
	if projects != nil {
		s.Projects = make([]model.Project, 0, len(projects))
		for _, e := range projects {
			p, err := toProject(e)
			if err != nil {
				return err
			}
			s.Projects = append(s.Projects, p)
		}
	}
	return nil
}

func toProject(e entry) (model.Project, error) {
	status, err := model.ParseStatus(e.meta.Status)
	if err != nil {
		return model.Project{}, fmt.Errorf("project '%s': %w", e.rel, err)
	}
	visibility := model.Private
	if e.meta.Visibility != "" {
		if visibility, err = model.ParseVisibility(e.meta.Visibility); err != nil {
			return model.Project{}, fmt.Errorf("project '%s': %w", e.rel, err)
		}
	}
	return model.Project{
		Title:       e.title,
		Description: e.text,
		Link:        e.meta.Link,
		Visibility:  visibility,
		Status:      status,
		Body:        e.body,
	}, nil
}

// readSection parses every Markdown file under dir/name, ordered by weight
// then path. A missing directory returns nil.
func (l *Loader) readSection(dir, name string) ([]entry, error) {
	root := filepath.Join(dir, name)
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	entries := []entry{}
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		e, err := l.readEntry(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error during %s collection walk: %w", name, walkErr)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].meta.Weight != entries[j].meta.Weight {
			return entries[i].meta.Weight < entries[j].meta.Weight
		}
		return entries[i].rel < entries[j].rel
	})
	l.logger.Debug("section collected", zap.String("section", name), zap.Int("items", len(entries)))
	return entries, nil
}

func (l *Loader) readEntry(root, path string) (entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entry{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		l.logger.Warn("could not parse frontmatter, treating as pure markdown", zap.String("path", path), zap.Error(err))
		body = raw
		meta = frontMatter{}
	}

	rendered, err := l.renderMarkdown(body)
	if err != nil {
		return entry{}, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", path, err)
	}

	rel, _ := filepath.Rel(root, path)
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = titleFromFile(filepath.Base(path))
	}

	return entry{
		rel:   filepath.ToSlash(rel),
		meta:  meta,
		text:  strings.TrimSpace(string(body)),
		body:  rendered,
		title: title,
	}, nil
}

// renderMarkdown converts src to sanitized HTML. Empty input yields "".
func (l *Loader) renderMarkdown(src []byte) (template.HTML, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := l.md.Convert(src, &buf); err != nil {
		return "", err
	}
	return template.HTML(l.policy.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized by bluemonday
}

// titleFromFile turns "zero-day_patterns.md" into "Zero Day Patterns".
func titleFromFile(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return cases.Title(language.English).String(base)
}
