package theme

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestToggleIsInvolution(t *testing.T) {
	t.Parallel()

	for _, th := range []Theme{Light, Dark} {
		assert.Equal(t, th, Toggle(Toggle(th)), "toggle twice from %s", th)
		assert.NotEqual(t, th, Toggle(th), "toggle once from %s", th)
	}
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  PreferenceSource
		want Theme
	}{
		{name: "dark preference", src: Fixed(true), want: Dark},
		{name: "light preference", src: Fixed(false), want: Light},
		{name: "unsupported", src: Unsupported(), want: Light},
		{name: "nil source", src: nil, want: Light},
		{
			name: "failing query",
			src:  PreferenceFunc(func() (bool, error) { return true, errors.New("boom") }),
			want: Light,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Initialize(tt.src, zap.NewNop()))
		})
	}
}

func TestInitializeQueriesOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	src := PreferenceFunc(func() (bool, error) {
		calls++
		return calls == 1, nil
	})

	res := NewResolver(src, nil)
	require.Equal(t, Dark, res.Current())
	assert.Equal(t, Dark, res.Current(), "current must not re-query the environment")
	assert.Equal(t, 1, calls)
}

func TestResolverToggleSequence(t *testing.T) {
	t.Parallel()

	res := NewResolver(Fixed(false), zap.NewNop())
	require.Equal(t, Light, res.Current())

	assert.Equal(t, Dark, res.Toggle())
	assert.Equal(t, Dark, res.Current())
	assert.Equal(t, Light, res.Toggle())
	assert.Equal(t, Light, res.Current())
}

func TestResolverDarkWithoutInteraction(t *testing.T) {
	t.Parallel()

	res := NewResolver(Fixed(true), zap.NewNop())
	assert.Equal(t, Dark, res.Current())
}

func TestHeaderSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    bool
		wantErr error
	}{
		{name: "dark", header: "dark", want: true},
		{name: "quoted dark", header: `"dark"`, want: true},
		{name: "light", header: "light", want: false},
		{name: "absent", header: "", wantErr: ErrUnsupported},
		{name: "garbage", header: "sepia", wantErr: ErrUnsupported},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(ClientHintHeader, tt.header)
			}
			got, err := HeaderSource(req).QueryDarkPreference()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeaderSourceNilRequest(t *testing.T) {
	t.Parallel()

	_, err := HeaderSource(nil).QueryDarkPreference()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := Parse(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, got)

	_, err = Parse("sepia")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestPaletteCoverage(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Palette(Light), Palette(Dark))
	assert.Equal(t, Palette(Light), Palette(Theme("mystery")))

	css := CSS()
	assert.True(t, strings.Contains(css, `[data-theme="light"]`))
	assert.True(t, strings.Contains(css, `[data-theme="dark"]`))
	assert.Contains(t, css, "--bg:"+Palette(Dark).Background)
}
