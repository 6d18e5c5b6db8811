package snapshot

import (
	"strings"

	"github.com/goliatone/go-snapshot/pkg/document"
	"github.com/goliatone/go-snapshot/pkg/secrets"
)

// entry pairs a flattened value with the secret flag decided at parse time.
type entry struct {
	value  Value
	secret bool
}

// flatten walks the document and produces the dotted-key binding map. The
// root must be a dictionary. Classification runs here, once per leaf; lookups
// never re-evaluate it. Duplicate dotted keys resolve last-write-wins via
// plain map assignment, matching the behavior of lenient document parsers
// that admit repeated keys at one dictionary level.
func flatten(root document.Node, classify secrets.Classifier) (map[string]entry, error) {
	dict, ok := root.(document.Dict)
	if !ok {
		return nil, ErrTopLevelNotDictionary
	}
	out := make(map[string]entry)
	if err := walk(nil, dict, classify, out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(prefix []string, dict document.Dict, classify secrets.Classifier, out map[string]entry) error {
	for key, node := range dict {
		path := append(prefix, key)
		if child, ok := node.(document.Dict); ok {
			if err := walk(path, child, classify, out); err != nil {
				return err
			}
			continue
		}
		full := strings.Join(path, ".")
		val, raw, err := leafValue(full, node)
		if err != nil {
			return err
		}
		out[full] = entry{value: val, secret: classify.IsSecret(full, raw)}
	}
	return nil
}

// leafValue converts a non-dictionary node into a stored Value plus the
// native form handed to the secret classifier.
func leafValue(key string, node document.Node) (Value, any, error) {
	switch v := node.(type) {
	case document.String:
		return StringValue(string(v)), string(v), nil
	case document.Int:
		return IntValue(int64(v)), int64(v), nil
	case document.Double:
		return DoubleValue(float64(v)), float64(v), nil
	case document.Bool:
		return BoolValue(bool(v)), bool(v), nil
	case document.Bytes:
		return BytesValue([]byte(v)), []byte(v), nil
	case document.Strings:
		return StringArrayValue([]string(v)), []string(v), nil
	case document.Ints:
		return IntArrayValue([]int64(v)), []int64(v), nil
	case document.Doubles:
		return DoubleArrayValue([]float64(v)), []float64(v), nil
	case document.Bools:
		return BoolArrayValue([]bool(v)), []bool(v), nil
	default:
		// Unreachable for nodes built by the document decoders; guards
		// hand-assembled trees carrying a nil Node.
		return Value{}, nil, &document.UnsupportedTypeError{Key: key, Type: typeName(node)}
	}
}

func typeName(node document.Node) string {
	if node == nil {
		return "nil"
	}
	return node.Kind().String()
}
