package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.Timeline(), 7)
	assert.Len(t, c.Glossary(), 3)
	assert.Len(t, c.Research(), 3)
	assert.Len(t, c.Publications(), 1)
	require.Len(t, c.Projects(), 2)

	first, second := c.Projects()[0], c.Projects()[1]
	assert.Equal(t, Private, first.Visibility)
	assert.Equal(t, Done, first.Status)
	assert.Equal(t, Public, second.Visibility)
	assert.Equal(t, InProgress, second.Status)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "done", want: Done},
		{in: " Done ", want: Done},
		{in: "in progress", want: InProgress},
		{in: "in_progress", want: InProgress},
		{in: "In-Progress", want: InProgress},
		{in: "abandoned", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVisibility(t *testing.T) {
	t.Parallel()

	v, err := ParseVisibility("PUBLIC")
	require.NoError(t, err)
	assert.Equal(t, Public, v)

	v, err = ParseVisibility("private")
	require.NoError(t, err)
	assert.Equal(t, Private, v)

	_, err = ParseVisibility("internal")
	assert.ErrorIs(t, err, ErrUnknownVisibility)
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "done", Done.Label())
	assert.Equal(t, "in progress", InProgress.Label())
}

func TestHasPublicLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Project
		want bool
	}{
		{name: "public with link", p: Project{Visibility: Public, Link: "https://example.org"}, want: true},
		{name: "public with placeholder link", p: Project{Visibility: Public, Link: "#"}, want: true},
		{name: "public without link", p: Project{Visibility: Public}, want: false},
		{name: "private with link", p: Project{Visibility: Private, Link: "https://example.org"}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.p.HasPublicLink())
		})
	}
}

func TestProjectYAML(t *testing.T) {
	t.Parallel()

	var p Project
	require.NoError(t, yaml.Unmarshal([]byte("title: Tool\nvisibility: public\nstatus: in_progress\n"), &p))
	assert.Equal(t, Public, p.Visibility)
	assert.Equal(t, InProgress, p.Status)

	err := yaml.Unmarshal([]byte("title: Tool\nstatus: paused\n"), &p)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestContentAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	c := NewContent(Sections{
		Profile:  Profile{SiteTitle: "Site"},
		Projects: []Project{{Title: "One", Visibility: Public, Status: Done}},
	})

	projects := c.Projects()
	projects[0].Title = "Changed"
	assert.Equal(t, "One", c.Projects()[0].Title)

	sections := c.Sections()
	sections.Projects[0].Title = "Changed"
	assert.Equal(t, "One", c.Projects()[0].Title)
	assert.Nil(t, c.Timeline())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	t.Parallel()

	c := NewContent(Sections{
		Profile:      Profile{SiteTitle: " ", Email: "not an address"},
		Socials:      []SocialLink{{Kind: GitHub, URL: "github.com/someone"}},
		Timeline:     []TimelineStep{{Title: ""}},
		Publications: []Publication{{Title: "Paper", Link: "ftp://example.org/paper"}},
		Projects:     []Project{{Title: "P", Visibility: "hidden", Status: "paused"}},
	})

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.ErrorIs(t, err, ErrInvalidLink)
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.ErrorIs(t, err, ErrUnknownVisibility)
	assert.Contains(t, err.Error(), "publications[0]")
}

func TestValidateAcceptsPublicProjectWithoutLink(t *testing.T) {
	t.Parallel()

	c := NewContent(Sections{
		Profile:  Profile{SiteTitle: "Site"},
		Projects: []Project{{Title: "P", Visibility: Public, Status: InProgress}},
	})
	assert.NoError(t, c.Validate())
}
