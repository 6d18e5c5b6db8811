// Package secrets defines the secret-classification contract applied while a
// configuration snapshot is flattened, plus masking helpers for safe logging.
// Classification runs exactly once per leaf at construction time; the stored
// flag drives redaction in diagnostics from then on.
package secrets

import "strings"

// Classifier decides whether a flattened configuration entry is sensitive.
// The key is the fully-qualified dotted key; value is the raw leaf in its
// native form (string, int64, float64, bool, []byte, or a typed slice).
type Classifier interface {
	IsSecret(key string, value any) bool
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(key string, value any) bool

func (f ClassifierFunc) IsSecret(key string, value any) bool { return f(key, value) }

// Never classifies nothing as secret. This is the default policy.
func Never() Classifier {
	return ClassifierFunc(func(string, any) bool { return false })
}

// Keys classifies entries whose dotted key exactly matches one of the
// provided keys. Matching is case-sensitive.
func Keys(keys ...string) Classifier {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return ClassifierFunc(func(key string, _ any) bool {
		_, ok := set[key]
		return ok
	})
}

// Prefixes classifies entries whose dotted key falls under one of the given
// prefixes, so whole subtrees ("credentials", "tls.keys") can be marked
// sensitive at once. A prefix matches itself and any dotted descendant.
func Prefixes(prefixes ...string) Classifier {
	return ClassifierFunc(func(key string, _ any) bool {
		for _, prefix := range prefixes {
			if key == prefix || strings.HasPrefix(key, prefix+".") {
				return true
			}
		}
		return false
	})
}
