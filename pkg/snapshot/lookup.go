package snapshot

import "strings"

// Result is the outcome of a single typed lookup. Key is the normalized
// dotted key. Found is false when the snapshot holds no binding for the key;
// an absent key is not an error, so callers can apply their own defaults.
type Result struct {
	Key    string
	Found  bool
	Value  Value
	Secret bool
}

// Lookup coerces the binding at the given key path to the requested kind.
// The path components are joined with "." using the exact convention the
// flattener used; that join is the single point of coupling between the two.
// A stored variant outside the coercion matrix for the requested kind fails
// with TypeMismatchError; the snapshot and other bindings are unaffected.
func (s *Snapshot) Lookup(key []string, requested Kind) (Result, error) {
	full := strings.Join(key, ".")
	ent, ok := s.entries[full]
	if !ok {
		return Result{Key: full}, nil
	}
	val, ok := coerce(ent.value, requested, s.decode)
	if !ok {
		return Result{Key: full}, &TypeMismatchError{Key: full, Requested: requested}
	}
	return Result{Key: full, Found: true, Value: val, Secret: ent.secret}, nil
}

// coerce applies the fixed coercion matrix. Conversions are one-directional
// and narrow: bool->int, int->bool, int->double widening, string->bytes via
// the configured decoder. Arrays only match their own variant; there is no
// cross-array coercion and no scalar-to-array promotion.
func coerce(stored Value, requested Kind, decode BytesDecoder) (Value, bool) {
	if stored.kind == requested {
		return stored, true
	}
	switch requested {
	case KindInt:
		if stored.kind == KindBool {
			if stored.boo {
				return IntValue(1), true
			}
			return IntValue(0), true
		}
	case KindDouble:
		if stored.kind == KindInt {
			return DoubleValue(float64(stored.num)), true
		}
	case KindBool:
		if stored.kind == KindInt {
			return BoolValue(stored.num != 0), true
		}
	case KindBytes:
		if stored.kind == KindString {
			raw, err := decode(stored.str)
			if err != nil {
				return Value{}, false
			}
			return BytesValue(raw), true
		}
	}
	return Value{}, false
}

// String looks up a text value at the given key path.
func (s *Snapshot) String(key ...string) (string, bool, error) {
	res, err := s.Lookup(key, KindString)
	if err != nil || !res.Found {
		return "", res.Found, err
	}
	return res.Value.str, true, nil
}

// Int looks up an integer. Stored booleans coerce as true=1, false=0.
func (s *Snapshot) Int(key ...string) (int64, bool, error) {
	res, err := s.Lookup(key, KindInt)
	if err != nil || !res.Found {
		return 0, res.Found, err
	}
	return res.Value.num, true, nil
}

// Double looks up a floating-point value. Stored integers widen.
func (s *Snapshot) Double(key ...string) (float64, bool, error) {
	res, err := s.Lookup(key, KindDouble)
	if err != nil || !res.Found {
		return 0, res.Found, err
	}
	return res.Value.flo, true, nil
}

// Bool looks up a boolean. Stored integers coerce as zero=false, nonzero=true.
func (s *Snapshot) Bool(key ...string) (bool, bool, error) {
	res, err := s.Lookup(key, KindBool)
	if err != nil || !res.Found {
		return false, res.Found, err
	}
	return res.Value.boo, true, nil
}

// Bytes looks up a byte blob. Stored strings run through the configured
// bytes decoder.
func (s *Snapshot) Bytes(key ...string) ([]byte, bool, error) {
	res, err := s.Lookup(key, KindBytes)
	if err != nil || !res.Found {
		return nil, res.Found, err
	}
	return append([]byte(nil), res.Value.raw...), true, nil
}

// StringArray looks up a homogeneous text array.
func (s *Snapshot) StringArray(key ...string) ([]string, bool, error) {
	res, err := s.Lookup(key, KindStringArray)
	if err != nil || !res.Found {
		return nil, res.Found, err
	}
	return append([]string(nil), res.Value.strs...), true, nil
}

// IntArray looks up a homogeneous integer array.
func (s *Snapshot) IntArray(key ...string) ([]int64, bool, error) {
	res, err := s.Lookup(key, KindIntArray)
	if err != nil || !res.Found {
		return nil, res.Found, err
	}
	return append([]int64(nil), res.Value.ints...), true, nil
}

// DoubleArray looks up a homogeneous floating-point array.
func (s *Snapshot) DoubleArray(key ...string) ([]float64, bool, error) {
	res, err := s.Lookup(key, KindDoubleArray)
	if err != nil || !res.Found {
		return nil, res.Found, err
	}
	return append([]float64(nil), res.Value.flos...), true, nil
}

// BoolArray looks up a homogeneous boolean array.
func (s *Snapshot) BoolArray(key ...string) ([]bool, bool, error) {
	res, err := s.Lookup(key, KindBoolArray)
	if err != nil || !res.Found {
		return nil, res.Found, err
	}
	return append([]bool(nil), res.Value.boos...), true, nil
}
