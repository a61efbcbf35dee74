package project

import (
	"errors"
	"strings"
)

var (
	// ErrTitleRequired indicates a missing project title.
	ErrTitleRequired = errors.New("project title is required")
	// ErrDescriptionRequired indicates a missing project description.
	ErrDescriptionRequired = errors.New("project description is required")
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
