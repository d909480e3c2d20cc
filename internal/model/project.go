package model

import (
	"fmt"
	"strings"
)

// Visibility controls whether a project's external link may be shown.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// ParseVisibility maps a textual visibility to a Visibility.
func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(s))); v {
	case Public, Private:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVisibility, s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Visibility) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseVisibility(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Status is the completion state of a project.
type Status string

const (
	InProgress Status = "in progress"
	Done       Status = "done"
)

// ParseStatus accepts "done", "in progress" and the "in_progress" /
// "in-progress" spellings.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	switch st := Status(norm); st {
	case InProgress, Done:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Status) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Label is the exact badge text for the status.
func (s Status) Label() string {
	return string(s)
}
