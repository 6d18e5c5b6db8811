package secrets

import (
	"strings"

	masker "github.com/goliatone/go-masker"
)

var defaultSecretFields = []string{
	"token", "access_token", "refresh_token",
	"api_key", "apikey", "apiKey",
	"password", "passphrase", "client_secret", "secret", "signing_key",
	"webhook_url", "dsn", "connection_string",
}

func init() {
	// Register common secret-ish field names so masking uses sane defaults.
	for _, field := range defaultSecretFields {
		masker.Default.RegisterMaskField(field, "preserveEnds(2,2)")
	}
}

// MaskedValues returns a partially masked copy of a rendered key/value map so
// snapshot contents can go into structured logs without leaking credentials.
// Unlike the fixed <REDACTED> marker used by debug descriptions, masked values
// keep their first and last characters to stay diffable across reloads.
func MaskedValues(values map[string]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	masked := make(map[string]string, len(values))
	for key, val := range values {
		masked[key] = maskString(val)
	}
	return masked
}

func maskString(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	// Too short to preserve ends without giving the whole value away.
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	if masked, err := masker.Default.String("preserveEnds(2,2)", value); err == nil {
		return masked
	}
	// Fallback masking if no rule is registered.
	return string(runes[:2]) + strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-2:])
}
