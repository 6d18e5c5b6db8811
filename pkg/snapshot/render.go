package snapshot

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-snapshot/pkg/secrets"
)

// Redacted is the fixed marker secret entries render as in debug output.
const Redacted = "<REDACTED>"

// Description returns the summary rendering: "{provider}[{count} values]".
func (s *Snapshot) Description() string {
	return fmt.Sprintf("%s[%d values]", s.provider, len(s.entries))
}

// DebugDescription returns the detailed rendering: the summary, then every
// binding as key=value, sorted by key ascending so repeated calls and
// repeated process runs produce identical output. Secret entries render as
// the Redacted marker regardless of their underlying kind.
func (s *Snapshot) DebugDescription() string {
	keys := s.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		ent := s.entries[k]
		rendered := Redacted
		if !ent.secret {
			rendered = ent.value.String()
		}
		parts = append(parts, k+"="+rendered)
	}
	return s.Description() + ": " + strings.Join(parts, ", ")
}

// MaskedValues renders every binding and partially masks it for structured
// logging. Unlike DebugDescription this masks all entries, secret or not,
// keeping a couple of characters at each end so operators can still diff two
// snapshots in logs. Use DebugDescription when hard redaction is required.
func (s *Snapshot) MaskedValues() map[string]string {
	if len(s.entries) == 0 {
		return nil
	}
	rendered := make(map[string]string, len(s.entries))
	for k, ent := range s.entries {
		rendered[k] = ent.value.String()
	}
	return secrets.MaskedValues(rendered)
}
