// Package document models a parsed configuration document as a closed node
// union: dictionaries, the supported scalars (string, int, double, bool,
// bytes), and homogeneous arrays of string/int/double/bool. Decoders exist
// for property-list bytes (binary or XML) and YAML bytes. The tree is
// transient input for snapshot construction; it is not retained afterward.
package document
