package snapshot

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-snapshot/pkg/secrets"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
`

func TestEndToEndTimeout(t *testing.T) {
	raw := []byte(xmlHeader + `<plist version="1.0">
<dict>
	<key>http</key>
	<dict>
		<key>timeout</key>
		<integer>30</integer>
	</dict>
</dict>
</plist>`)

	snap, err := New(raw, "settings.plist")
	if err != nil {
		t.Fatalf("construction returned error: %v", err)
	}
	if got := snap.Description(); got != "settings.plist[1 values]" {
		t.Fatalf("unexpected description: %q", got)
	}
	timeout, found, err := snap.Int("http", "timeout")
	if err != nil || !found {
		t.Fatalf("timeout lookup failed: found=%v err=%v", found, err)
	}
	if timeout != 30 {
		t.Fatalf("expected 30, got %d", timeout)
	}
}

func TestEndToEndDeepNesting(t *testing.T) {
	raw := []byte(xmlHeader + `<plist version="1.0">
<dict>
	<key>a</key>
	<dict>
		<key>b</key>
		<dict>
			<key>c</key>
			<string>deep</string>
		</dict>
	</dict>
</dict>
</plist>`)

	snap, err := New(raw, "p")
	if err != nil {
		t.Fatalf("construction returned error: %v", err)
	}
	if keys := snap.Keys(); len(keys) != 1 || keys[0] != "a.b.c" {
		t.Fatalf("expected flattened key a.b.c, got %v", keys)
	}
	v, found, err := snap.String("a", "b", "c")
	if err != nil || !found || v != "deep" {
		t.Fatalf("expected deep, got %q (found=%v err=%v)", v, found, err)
	}
}

func TestEndToEndBoolCoercion(t *testing.T) {
	raw := []byte(xmlHeader + `<plist version="1.0">
<dict>
	<key>enabled</key>
	<true/>
</dict>
</plist>`)

	snap, err := New(raw, "p")
	if err != nil {
		t.Fatalf("construction returned error: %v", err)
	}
	asInt, found, err := snap.Int("enabled")
	if err != nil || !found || asInt != 1 {
		t.Fatalf("expected enabled as int 1, got %d (found=%v err=%v)", asInt, found, err)
	}
	asBool, found, err := snap.Bool("enabled")
	if err != nil || !found || !asBool {
		t.Fatalf("expected enabled as bool true, got %v (found=%v err=%v)", asBool, found, err)
	}
}

func TestEndToEndScalarRootFails(t *testing.T) {
	raw := []byte(xmlHeader + `<plist version="1.0"><string>not a dict</string></plist>`)
	_, err := New(raw, "p")
	if !errors.Is(err, ErrTopLevelNotDictionary) {
		t.Fatalf("expected ErrTopLevelNotDictionary, got %v", err)
	}
}

func TestEndToEndSecretRedaction(t *testing.T) {
	raw := []byte(xmlHeader + `<plist version="1.0">
<dict>
	<key>password</key>
	<string>hunter2</string>
	<key>host</key>
	<string>localhost</string>
</dict>
</plist>`)

	snap, err := New(raw, "p", WithSecretClassifier(secrets.Keys("password")))
	if err != nil {
		t.Fatalf("construction returned error: %v", err)
	}

	out := snap.DebugDescription()
	if !strings.Contains(out, "password=<REDACTED>") {
		t.Fatalf("expected password redacted, got %q", out)
	}
	if strings.Contains(out, "hunter2") {
		t.Fatalf("debug description leaked the plaintext: %q", out)
	}

	// The value itself stays retrievable; redaction is a diagnostics concern.
	v, found, err := snap.String("password")
	if err != nil || !found || v != "hunter2" {
		t.Fatalf("expected plaintext through typed lookup, got %q (found=%v err=%v)", v, found, err)
	}
	res, err := snap.Lookup([]string{"password"}, KindString)
	if err != nil || !res.Secret {
		t.Fatalf("expected secret flag on lookup result, got %+v err=%v", res, err)
	}
}

func TestEndToEndDuplicateKeyLastWins(t *testing.T) {
	raw := []byte(xmlHeader + `<plist version="1.0">
<dict>
	<key>mode</key>
	<string>first</string>
	<key>mode</key>
	<string>second</string>
</dict>
</plist>`)

	snap, err := New(raw, "p")
	if err != nil {
		t.Fatalf("expected duplicate keys to be tolerated, got %v", err)
	}
	if snap.Len() != 1 {
		t.Fatalf("expected 1 binding, got %d", snap.Len())
	}
	v, found, err := snap.String("mode")
	if err != nil || !found {
		t.Fatalf("mode lookup failed: found=%v err=%v", found, err)
	}
	if v != "second" {
		t.Fatalf("expected later value to win, got %q", v)
	}
}

func TestEndToEndYAML(t *testing.T) {
	raw := []byte(`
http:
  timeout: 30
secrets:
  api_key: abc123
`)
	snap, err := NewYAML(raw, "config.yaml",
		WithSecretClassifier(secrets.Prefixes("secrets")))
	if err != nil {
		t.Fatalf("construction returned error: %v", err)
	}
	timeout, found, err := snap.Int("http", "timeout")
	if err != nil || !found || timeout != 30 {
		t.Fatalf("expected timeout 30, got %d (found=%v err=%v)", timeout, found, err)
	}
	out := snap.DebugDescription()
	if !strings.Contains(out, "secrets.api_key=<REDACTED>") || strings.Contains(out, "abc123") {
		t.Fatalf("expected secret subtree redacted, got %q", out)
	}
}

func TestSnapshotIdentity(t *testing.T) {
	raw := []byte(xmlHeader + `<plist version="1.0">
<dict>
	<key>a</key>
	<integer>1</integer>
</dict>
</plist>`)

	first, err := New(raw, "p")
	if err != nil {
		t.Fatalf("construction returned error: %v", err)
	}
	second, err := New(raw, "p")
	if err != nil {
		t.Fatalf("construction returned error: %v", err)
	}
	if first.ID() == "" || first.ID() == second.ID() {
		t.Fatalf("expected distinct non-empty snapshot ids, got %q and %q", first.ID(), second.ID())
	}
	if first.Provider() != "p" {
		t.Fatalf("expected provider label p, got %q", first.Provider())
	}
}

func TestConstructionFailureProducesNoSnapshot(t *testing.T) {
	raw := []byte(xmlHeader + `<plist version="1.0">
<dict>
	<key>ok</key>
	<string>fine</string>
	<key>bad</key>
	<date>2024-01-01T00:00:00Z</date>
</dict>
</plist>`)

	snap, err := New(raw, "p")
	if err == nil {
		t.Fatalf("expected construction to fail on unsupported leaf")
	}
	if snap != nil {
		t.Fatalf("construction must be all-or-nothing, got partial snapshot")
	}
}
