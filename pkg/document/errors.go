package document

import "fmt"

// UnsupportedTypeError reports a document value whose shape is outside the
// supported set. Key is the dotted path to the offending value ("" for the
// root) and Type names the shape that was observed.
type UnsupportedTypeError struct {
	Key  string
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("document: unsupported type %s", e.Type)
	}
	return fmt.Sprintf("document: unsupported type %s at %q", e.Type, e.Key)
}
