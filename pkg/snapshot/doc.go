// Package snapshot turns a hierarchical configuration document into an
// immutable, flat, strongly-typed key-value view. A document is parsed once
// into a Snapshot; every later operation is a pure read. Nested dictionaries
// flatten to dot-joined keys, leaves are classified as secret exactly once at
// construction time, and typed lookups coerce stored values through a fixed,
// narrow matrix (bool<->int, int->double, string->bytes via a pluggable
// decoder). Reloading is the caller's concern: a reload builds a brand-new
// Snapshot, it never patches an existing one.
package snapshot
