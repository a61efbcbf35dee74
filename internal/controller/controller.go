// Package controller orchestrates the screens: each controller owns a
// derived view of its collection, reloads it wholesale after every
// successful mutation, and reports outcomes through the notification
// center. Passive load failures only set the screen's error banner.
package controller

import (
	"errors"
	"fmt"

	"github.com/yferhat/taskdeck/internal/backend"
)

// ScreenState tracks the load lifecycle of a screen. Any mutating action
// re-enters StateLoading through the reload it triggers.
type ScreenState int

const (
	StateIdle ScreenState = iota
	StateLoading
	StateReady
	StateFailed
)

func (s ScreenState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Confirmer gates destructive actions behind an explicit yes/no decision.
// Declining performs no action and raises no notification.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// loadErrorMessage derives the banner text for a failed passive load,
// embedding the status code when one is available.
func loadErrorMessage(err error, what string) string {
	if errors.Is(err, backend.ErrTimeout) {
		return "Request timed out. Is the backend running?"
	}
	if code, ok := backend.StatusCode(err); ok {
		return fmt.Sprintf("Unable to load %s (status %d).", what, code)
	}
	return fmt.Sprintf("Unable to load %s.", what)
}
