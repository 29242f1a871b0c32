package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown genre).
// Handlers re-render the submitted form with the field messages.
var ErrValidation = errors.New("validation error")

// FieldErrors maps a form field name to a human-readable message.
// It satisfies errors.Is(err, ErrValidation) so callers that only care about
// the category never need to know about the concrete type.
type FieldErrors map[string]string

// Add records msg for field, keeping the first message if one already exists.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// Err returns fe as an error, or nil when no field failed.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Error renders the messages ordered by field name so output is stable.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
