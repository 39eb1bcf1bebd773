package logger

import (
	"log/slog"
	"strings"
)

// Attribute keys containing any of these are masked.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"pin",
}

// RedactedValue replaces masked values.
const RedactedValue = "***REDACTED***"

// redactSensitive masks string attributes whose key looks sensitive.
// Groups are walked recursively.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		if a.Value.String() != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, RedactedValue)
		}
		return a
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// RedactArgs masks the values following sensitive keys in a key/value
// argument list such as a tokenized command line: the token after
// "password" is replaced.
func RedactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if IsSensitiveKey(out[i]) {
			out[i+1] = RedactedValue
			i++
		}
	}
	return out
}
