package snapshot

import (
	"sort"

	"github.com/google/uuid"

	"github.com/goliatone/go-snapshot/pkg/document"
	"github.com/goliatone/go-snapshot/pkg/interfaces/logger"
)

// Snapshot is an immutable point-in-time flattened view of a configuration
// document. It is built exactly once per document and is safe for concurrent
// reads without synchronization: no field mutates after construction.
type Snapshot struct {
	id       uuid.UUID
	provider string
	entries  map[string]entry
	decode   BytesDecoder
}

// New decodes property-list bytes and builds a snapshot. provider is a label
// used only for diagnostics. Construction is all-or-nothing: any unsupported
// value shape or a non-dictionary root fails without a partial snapshot.
func New(raw []byte, provider string, opts ...Option) (*Snapshot, error) {
	node, err := document.Decode(raw)
	if err != nil {
		return nil, err
	}
	return FromNode(node, provider, opts...)
}

// NewYAML is New for providers that carry YAML bytes instead of a plist.
func NewYAML(raw []byte, provider string, opts ...Option) (*Snapshot, error) {
	node, err := document.DecodeYAML(raw)
	if err != nil {
		return nil, err
	}
	return FromNode(node, provider, opts...)
}

// FromNode builds a snapshot from an already-decoded document tree. The tree
// is consumed during flattening and not retained.
func FromNode(root document.Node, provider string, opts ...Option) (*Snapshot, error) {
	settings := buildOptions(opts)

	entries, err := flatten(root, settings.Classifier)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		id:       uuid.New(),
		provider: provider,
		entries:  entries,
		decode:   settings.BytesDecoder,
	}

	settings.Logger.Debug("snapshot constructed",
		logger.F("provider", provider),
		logger.F("snapshot_id", snap.id.String()),
		logger.F("values", len(entries)),
	)

	return snap, nil
}

// ID returns the construction-time identifier. Diagnostics only; two
// snapshots of the same document get distinct IDs.
func (s *Snapshot) ID() string { return s.id.String() }

// Provider returns the diagnostic label the snapshot was built with.
func (s *Snapshot) Provider() string { return s.provider }

// Len returns the number of flattened bindings. Constant for the snapshot's
// lifetime.
func (s *Snapshot) Len() int { return len(s.entries) }

// Keys returns every flattened key in ascending lexicographic order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
