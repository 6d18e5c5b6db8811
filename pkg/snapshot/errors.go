package snapshot

import (
	"errors"
	"fmt"
)

// ErrTopLevelNotDictionary is returned by construction when the document root
// is anything other than a dictionary. No partial snapshot is produced.
var ErrTopLevelNotDictionary = errors.New("snapshot: top-level document is not a dictionary")

// TypeMismatchError reports a lookup that requested a kind the stored variant
// cannot be coerced to. It is local to the single query; the snapshot and
// every other binding stay usable.
type TypeMismatchError struct {
	Key       string
	Requested Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("snapshot: value at %q cannot be coerced to %s", e.Key, e.Requested)
}
