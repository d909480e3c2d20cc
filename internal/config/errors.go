package config

import "errors"

var (
	// ErrEmptyOutputDir is returned when no output directory is configured.
	ErrEmptyOutputDir = errors.New("output directory must not be empty")

	// ErrUnsafeOutputDir is returned when the output directory is the working
	// directory or the filesystem root. The build removes it before writing.
	ErrUnsafeOutputDir = errors.New("output directory must not be '.' or '/'")

	// ErrOutputOverlapsContent is returned when the output directory is the
	// content directory, one of its parents or one of its children.
	ErrOutputOverlapsContent = errors.New("output directory must not overlap the content directory")

	// ErrOutputOverlapsStatic is returned when the output directory is the
	// static directory, one of its parents or one of its children.
	ErrOutputOverlapsStatic = errors.New("output directory must not overlap the static directory")

	// ErrInvalidTheme is returned when the theme is neither light nor dark.
	ErrInvalidTheme = errors.New("theme must be light or dark")

	// ErrInvalidPort is returned when the serve port is out of range.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
)
