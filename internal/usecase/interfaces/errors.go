package interfaces

import "errors"

// ErrNotFound is returned by repository Update when the target id is absent
// from the collection. Delete never returns it: removing a missing record is
// a no-op.
var ErrNotFound = errors.New("record not found")
