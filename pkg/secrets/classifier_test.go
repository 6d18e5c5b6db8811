package secrets

import "testing"

func TestNeverClassifiesNothing(t *testing.T) {
	c := Never()
	if c.IsSecret("password", "hunter2") {
		t.Fatalf("never policy must not flag anything")
	}
	if c.IsSecret("", nil) {
		t.Fatalf("never policy must not flag anything")
	}
}

func TestKeysMatchesExactDottedKeys(t *testing.T) {
	c := Keys("db.password", "api_key")

	if !c.IsSecret("db.password", "x") {
		t.Fatalf("expected exact match to be flagged")
	}
	if !c.IsSecret("api_key", 42) {
		t.Fatalf("expected exact match to be flagged regardless of value type")
	}
	if c.IsSecret("db.password.hint", "x") {
		t.Fatalf("exact policy must not match descendants")
	}
	if c.IsSecret("DB.PASSWORD", "x") {
		t.Fatalf("matching must be case-sensitive")
	}
	if c.IsSecret("password", "x") {
		t.Fatalf("unrelated key must not be flagged")
	}
}

func TestPrefixesMatchSubtrees(t *testing.T) {
	c := Prefixes("credentials", "tls.keys")

	for _, key := range []string{"credentials", "credentials.user", "credentials.oauth.token", "tls.keys.server"} {
		if !c.IsSecret(key, "v") {
			t.Fatalf("expected %q to be flagged", key)
		}
	}
	for _, key := range []string{"credentialsx", "tls.keysize", "tls", "host"} {
		if c.IsSecret(key, "v") {
			t.Fatalf("expected %q to stay unflagged", key)
		}
	}
}

func TestClassifierFuncAdapter(t *testing.T) {
	var gotKey string
	var gotValue any
	c := ClassifierFunc(func(key string, value any) bool {
		gotKey, gotValue = key, value
		return true
	})
	if !c.IsSecret("k", 7) {
		t.Fatalf("adapter must forward the return value")
	}
	if gotKey != "k" || gotValue != 7 {
		t.Fatalf("adapter must forward arguments, got %q %v", gotKey, gotValue)
	}
}
