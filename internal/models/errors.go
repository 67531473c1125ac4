package models

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("models: user not found")
	ErrItemNotFound       = errors.New("models: item not found")
	ErrDuplicateUsername  = errors.New("models: duplicate username")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrNotOwner           = errors.New("models: requester does not own the item")
	ErrSessionNotFound    = errors.New("models: session not found")
)

// ValidationErrors maps a field name to a human-readable message and is
// rendered to clients as the body of a 400 response.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + v[field])
	}
	return b.String()
}
