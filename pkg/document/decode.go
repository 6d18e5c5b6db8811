package document

import (
	"fmt"
	"strings"

	"howett.net/plist"
)

// Decode parses property-list bytes into the node union. Both binary and
// XML/text encodings are accepted; the format is auto-detected. Values whose
// shape falls outside the supported set (dates, heterogeneous arrays, nested
// collections inside arrays) fail with UnsupportedTypeError.
func Decode(raw []byte) (Node, error) {
	var v any
	if _, err := plist.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("document: decode plist: %w", err)
	}
	return fromAny(nil, v)
}

// fromAny converts a decoded dynamic value into the closed union, tracking the
// key path for error reporting. Shared by the plist and YAML front ends.
func fromAny(path []string, v any) (Node, error) {
	switch val := v.(type) {
	case map[string]any:
		dict := make(Dict, len(val))
		for key, child := range val {
			node, err := fromAny(append(path, key), child)
			if err != nil {
				return nil, err
			}
			dict[key] = node
		}
		return dict, nil
	case map[any]any:
		dict := make(Dict, len(val))
		for rawKey, child := range val {
			key, ok := rawKey.(string)
			if !ok {
				return nil, unsupported(path, fmt.Sprintf("map key %T", rawKey))
			}
			node, err := fromAny(append(path, key), child)
			if err != nil {
				return nil, err
			}
			dict[key] = node
		}
		return dict, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case []byte:
		return Bytes(val), nil
	case []any:
		return arrayFromAny(path, val)
	default:
		if i, ok := asInt(v); ok {
			return Int(i), nil
		}
		if f, ok := asDouble(v); ok {
			return Double(f), nil
		}
		return nil, unsupported(path, fmt.Sprintf("%T", v))
	}
}

// arrayFromAny admits homogeneous arrays of string, int, double, or bool. The
// first element fixes the element kind. Empty arrays decode as an empty
// string array since no element is available to pick a kind from.
func arrayFromAny(path []string, items []any) (Node, error) {
	if len(items) == 0 {
		return Strings{}, nil
	}
	switch items[0].(type) {
	case string:
		out := make(Strings, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, unsupported(path, "heterogeneous array")
			}
			out[i] = s
		}
		return out, nil
	case bool:
		out := make(Bools, len(items))
		for i, item := range items {
			b, ok := item.(bool)
			if !ok {
				return nil, unsupported(path, "heterogeneous array")
			}
			out[i] = b
		}
		return out, nil
	}
	if _, ok := asInt(items[0]); ok {
		out := make(Ints, len(items))
		for i, item := range items {
			n, ok := asInt(item)
			if !ok {
				return nil, unsupported(path, "heterogeneous array")
			}
			out[i] = n
		}
		return out, nil
	}
	if _, ok := asDouble(items[0]); ok {
		out := make(Doubles, len(items))
		for i, item := range items {
			f, ok := asDouble(item)
			if !ok {
				return nil, unsupported(path, "heterogeneous array")
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, unsupported(path, fmt.Sprintf("array of %T", items[0]))
}

// asInt normalizes the integer representations the plist and YAML decoders
// produce for dynamic values.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func asDouble(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	default:
		return 0, false
	}
}

func unsupported(path []string, typeName string) error {
	return &UnsupportedTypeError{Key: strings.Join(path, "."), Type: typeName}
}
