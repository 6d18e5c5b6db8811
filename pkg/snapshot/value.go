package snapshot

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Kind identifies the variant a stored or requested value takes. The set is
// closed: exactly the nine shapes below are representable.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindDouble
	KindBool
	KindBytes
	KindStringArray
	KindIntArray
	KindDoubleArray
	KindBoolArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	case KindStringArray:
		return "string-array"
	case KindIntArray:
		return "int-array"
	case KindDoubleArray:
		return "double-array"
	case KindBoolArray:
		return "bool-array"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged union over the nine supported shapes. Slices
// are copied on the way in and on the way out, so a Value can be shared
// freely once constructed.
type Value struct {
	kind Kind
	str  string
	num  int64
	flo  float64
	boo  bool
	raw  []byte
	strs []string
	ints []int64
	flos []float64
	boos []bool
}

func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func IntValue(n int64) Value      { return Value{kind: KindInt, num: n} }
func DoubleValue(f float64) Value { return Value{kind: KindDouble, flo: f} }
func BoolValue(b bool) Value      { return Value{kind: KindBool, boo: b} }

func BytesValue(b []byte) Value {
	return Value{kind: KindBytes, raw: append([]byte(nil), b...)}
}

func StringArrayValue(s []string) Value {
	return Value{kind: KindStringArray, strs: append([]string(nil), s...)}
}

func IntArrayValue(n []int64) Value {
	return Value{kind: KindIntArray, ints: append([]int64(nil), n...)}
}

func DoubleArrayValue(f []float64) Value {
	return Value{kind: KindDoubleArray, flos: append([]float64(nil), f...)}
}

func BoolArrayValue(b []bool) Value {
	return Value{kind: KindBoolArray, boos: append([]bool(nil), b...)}
}

// Kind reports the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the value in its native Go form: string, int64, float64,
// bool, []byte, []string, []int64, []float64, or []bool. Slices are copies.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindDouble:
		return v.flo
	case KindBool:
		return v.boo
	case KindBytes:
		return append([]byte(nil), v.raw...)
	case KindStringArray:
		return append([]string(nil), v.strs...)
	case KindIntArray:
		return append([]int64(nil), v.ints...)
	case KindDoubleArray:
		return append([]float64(nil), v.flos...)
	case KindBoolArray:
		return append([]bool(nil), v.boos...)
	default:
		return nil
	}
}

// String renders the value in its natural text form: scalars verbatim, byte
// blobs base64-encoded, arrays comma-joined with no brackets. Embedded commas
// in array elements are not escaped; the format trades round-trippability for
// readable log lines.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindDouble:
		return strconv.FormatFloat(v.flo, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.boo)
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.raw)
	case KindStringArray:
		return strings.Join(v.strs, ",")
	case KindIntArray:
		parts := make([]string, len(v.ints))
		for i, n := range v.ints {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ",")
	case KindDoubleArray:
		parts := make([]string, len(v.flos))
		for i, f := range v.flos {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, ",")
	case KindBoolArray:
		parts := make([]string, len(v.boos))
		for i, b := range v.boos {
			parts[i] = strconv.FormatBool(b)
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
