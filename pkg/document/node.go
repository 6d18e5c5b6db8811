package document

// Kind discriminates the shapes a document node can take.
type Kind int

const (
	KindDictionary Kind = iota
	KindString
	KindInt
	KindDouble
	KindBool
	KindBytes
	KindStringArray
	KindIntArray
	KindDoubleArray
	KindBoolArray
)

// String returns the wire-stable name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindDictionary:
		return "dictionary"
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

// Node is one node of a parsed configuration document: a dictionary, one of
// the supported scalar shapes, or a homogeneous array. The set of
// implementations is closed; consumers match with a type switch.
type Node interface {
	Kind() Kind
	isNode()
}

// Dict maps string keys to child nodes.
type Dict map[string]Node

// String is a text leaf.
type String string

// Int is an integer leaf.
type Int int64

// Double is a floating-point leaf.
type Double float64

// Bool is a boolean leaf.
type Bool bool

// Bytes is a binary blob leaf.
type Bytes []byte

// Strings is a homogeneous array of text values.
type Strings []string

// Ints is a homogeneous array of integers.
type Ints []int64

// Doubles is a homogeneous array of floating-point values.
type Doubles []float64

// Bools is a homogeneous array of booleans.
type Bools []bool

func (Dict) Kind() Kind    { return KindDictionary }
func (String) Kind() Kind  { return KindString }
func (Int) Kind() Kind     { return KindInt }
func (Double) Kind() Kind  { return KindDouble }
func (Bool) Kind() Kind    { return KindBool }
func (Bytes) Kind() Kind   { return KindBytes }
func (Strings) Kind() Kind { return KindStringArray }
func (Ints) Kind() Kind    { return KindIntArray }
func (Doubles) Kind() Kind { return KindDoubleArray }
func (Bools) Kind() Kind   { return KindBoolArray }

func (Dict) isNode()    {}
func (String) isNode()  {}
func (Int) isNode()     {}
func (Double) isNode()  {}
func (Bool) isNode()    {}
func (Bytes) isNode()   {}
func (Strings) isNode() {}
func (Ints) isNode()    {}
func (Doubles) isNode() {}
func (Bools) isNode()   {}
