package repositories

import "errors"

// ErrNotFound is the repository-level missing-record sentinel. Services
// translate it into their own error vocabulary.
var ErrNotFound = errors.New("record not found")
