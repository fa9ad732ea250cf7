package airportfinder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched by every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("place not found")

// NotFoundError is returned by Resolve when neither the exact nor the prefix
// pass matches. Query is the caller's input before normalization.
type NotFoundError struct {
	Query       string
	Suggestions []string // canonical city names close to Query, best first
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %q", ErrNotFound, e.Query)
	}
	return fmt.Sprintf("%s: %q (did you mean %s?)", ErrNotFound, e.Query, strings.Join(e.Suggestions, ", "))
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
