package repositories

import "errors"

// ErrNotFound is returned when a lookup targets a record that does not
// exist. Callers check it with errors.Is.
var ErrNotFound = errors.New("record not found")
