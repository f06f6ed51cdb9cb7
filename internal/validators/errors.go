package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldErrors maps a form field name to the message shown next to it.
// An empty map means the form is valid.
type FieldErrors map[string]string

// Error joins all messages in field order so the value can travel as an error.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range slices.Sorted(maps.Keys(fe)) {
		parts = append(parts, field+": "+fe[field])
	}
	return strings.Join(parts, "; ")
}

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Valid reports whether there are no errors.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Clone returns an independent copy.
func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	maps.Copy(out, fe)
	return out
}
