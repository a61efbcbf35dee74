package auth

import (
	"errors"
	"net/mail"
	"strings"
)

// Credentials is a login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is a register request payload.
type Registration struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

const minPasswordLength = 6

var (
	// ErrEmailRequired indicates a missing or malformed email address.
	ErrEmailRequired = errors.New("a valid email address is required")
	// ErrPasswordRequired indicates a missing password.
	ErrPasswordRequired = errors.New("password is required")
	// ErrPasswordTooShort indicates a password below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrFullNameRequired indicates a missing full name.
	ErrFullNameRequired = errors.New("full name is required")
)

// Validate checks the login form constraints.
func (c Credentials) Validate() error {
	if !validEmail(c.Email) {
		return ErrEmailRequired
	}
	if c.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// Validate checks the registration form constraints.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrFullNameRequired
	}
	if !validEmail(r.Email) {
		return ErrEmailRequired
	}
	if r.Password == "" {
		return ErrPasswordRequired
	}
	if len(r.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func validEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
