package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses YAML bytes into the same node union as Decode, for
// providers that carry YAML documents instead of property lists. The shape
// constraints are identical: string-keyed mappings, the supported scalars,
// homogeneous arrays. Null values have no supported counterpart and fail
// with UnsupportedTypeError.
func DecodeYAML(raw []byte) (Node, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("document: decode yaml: %w", err)
	}
	return fromAny(nil, v)
}
