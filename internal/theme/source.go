package theme

import (
	"errors"
	"net/http"
	"strings"
)

// ErrUnsupported is returned by a PreferenceSource that cannot report a
// color-scheme preference.
var ErrUnsupported = errors.New("color scheme preference unsupported")

// PreferenceSource reports the host environment's color-scheme preference.
type PreferenceSource interface {
	QueryDarkPreference() (bool, error)
}

// PreferenceFunc adapts a function to PreferenceSource.
type PreferenceFunc func() (bool, error)

// QueryDarkPreference implements PreferenceSource.
func (f PreferenceFunc) QueryDarkPreference() (bool, error) {
	return f()
}

// Fixed returns a source that always answers dark.
func Fixed(dark bool) PreferenceSource {
	return PreferenceFunc(func() (bool, error) { return dark, nil })
}

// FromTheme returns a source that reports a dark preference iff t is Dark.
func FromTheme(t Theme) PreferenceSource {
	return Fixed(t == Dark)
}

// Unsupported returns a source that never answers.
func Unsupported() PreferenceSource {
	return PreferenceFunc(func() (bool, error) { return false, ErrUnsupported })
}

// ClientHintHeader is the user-agent client hint carrying the
// prefers-color-scheme media feature.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// HeaderSource reads the color-scheme client hint of an HTTP request.
// Browsers only send it after the server advertised it with Accept-CH.
func HeaderSource(r *http.Request) PreferenceSource {
	return PreferenceFunc(func() (bool, error) {
		if r == nil {
			return false, ErrUnsupported
		}
		raw := r.Header.Get(ClientHintHeader)
		switch strings.Trim(strings.ToLower(strings.TrimSpace(raw)), `"`) {
		case "dark":
			return true, nil
		case "light":
			return false, nil
		}
		return false, ErrUnsupported
	})
}
