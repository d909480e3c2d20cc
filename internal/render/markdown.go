package render

import (
	"io"
	"strings"
	"time"

	"github.com/nao1215/markdown"

	"github.com/dothrak/Portfolio-2.0/internal/model"
)

// MarkdownWriter renders the content model as a GitHub flavored Markdown
// document, e.g. for a profile README. Themes do not apply.
type MarkdownWriter struct {
	clock Clock
}

// NewMarkdownWriter creates a MarkdownWriter. A nil clock uses time.Now.
func NewMarkdownWriter(clock Clock) *MarkdownWriter {
	if clock == nil {
		clock = ClockFunc(time.Now)
	}
	return &MarkdownWriter{clock: clock}
}

// Write outputs the whole document to w.
func (m *MarkdownWriter) Write(w io.Writer, c *model.Content) error {
	cards, err := projectCards(c.Projects())
	if err != nil {
		return err
	}

	md := markdown.NewMarkdown(w)
	p := c.Profile()

	md.H1(p.SiteTitle)
	if p.Tagline != "" {
		md.PlainText(markdown.Italic(p.Tagline))
		md.PlainText("")
	}
	md.H2(p.Headline)
	md.PlainText(p.Bio)
	md.PlainText("")

	if langs := c.Languages(); len(langs) > 0 {
		names := make([]string, 0, len(langs))
		for _, l := range langs {
			names = append(names, strings.TrimSpace(l.Flag+" "+l.Name))
		}
		md.PlainText(strings.Join(names, " · "))
		md.PlainText("")
	}

	m.writeTimeline(md, c)
	m.writeResearch(md, c)
	m.writePublications(md, c)
	m.writeProjects(md, cards)
	m.writeContact(md, c)

	md.HorizontalRule()
	md.PlainTextf("© %d %s - All rights reserved", m.clock.Now().Year(), p.Name)

	return md.Build()
}

func (m *MarkdownWriter) writeTimeline(md *markdown.Markdown, c *model.Content) {
	steps := c.Timeline()
	if len(steps) == 0 {
		return
	}
	md.H2("Journey")
	md.PlainText("")
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, []string{s.Period, s.Title, oneLine(s.Description)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Period", "Where", "What"},
		Rows:   rows,
	})
	md.PlainText("")

	if glossary := c.Glossary(); len(glossary) > 0 {
		items := make([]string, 0, len(glossary))
		for _, g := range glossary {
			items = append(items, markdown.Bold(g.Term)+" = "+g.Meaning)
		}
		md.BulletList(items...)
		md.PlainText("")
	}
}

func (m *MarkdownWriter) writeResearch(md *markdown.Markdown, c *model.Content) {
	axes := c.Research()
	if len(axes) == 0 {
		return
	}
	md.H2("Research areas")
	items := make([]string, 0, len(axes))
	for _, a := range axes {
		items = append(items, markdown.Bold(a.Title)+": "+oneLine(a.Description))
	}
	md.BulletList(items...)
	md.PlainText("")
}

func (m *MarkdownWriter) writePublications(md *markdown.Markdown, c *model.Content) {
	pubs := c.Publications()
	if len(pubs) == 0 {
		return
	}
	md.H2("Publications")
	for _, p := range pubs {
		md.H3(markdown.Link(p.Title, p.Link))
		md.PlainText(markdown.Italic(p.Venue))
		md.PlainText("")
		md.PlainText(p.Description)
		md.PlainText("")
	}
}

func (m *MarkdownWriter) writeProjects(md *markdown.Markdown, projects []model.ProjectCard) {
	if len(projects) == 0 {
		return
	}
	md.H2("Projects")
	md.PlainText("")
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		where := "Company project"
		if p.ShowLink {
			where = markdown.Link("View", p.Link)
		}
		rows = append(rows, []string{p.Title, p.Status.Label(), where})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Project", "Status", "Link"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (m *MarkdownWriter) writeContact(md *markdown.Markdown, c *model.Content) {
	p := c.Profile()
	socials := c.Socials()
	if p.Email == "" && len(socials) == 0 {
		return
	}
	md.H2("Contact")
	if p.ContactText != "" {
		md.PlainText(p.ContactText)
		md.PlainText("")
	}
	items := make([]string, 0, len(socials)+1)
	if p.Email != "" {
		items = append(items, markdown.Link(p.Email, "mailto:"+p.Email))
	}
	for _, s := range socials {
		items = append(items, markdown.Link(socialLabel(s.Kind), s.URL))
	}
	md.BulletList(items...)
	md.PlainText("")
}

// oneLine collapses whitespace so text fits in a table cell.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
