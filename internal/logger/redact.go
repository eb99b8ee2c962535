package logger

import "strings"

// sensitiveKeywords are substrings of header/field names whose values must
// never reach a log line or an HTTP error detail
var sensitiveKeywords = []string{"secret", "password", "token", "api_key", "apikey", "authorization"}

// SensitiveKey reports whether a header or field name looks like it carries a credential
func SensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// RedactMap returns a copy of m with credential-looking values replaced
func RedactMap(m map[string]string) map[string]string {
	redacted := make(map[string]string, len(m))
	for k, v := range m {
		if SensitiveKey(k) {
			redacted[k] = "[REDACTED]"
		} else {
			redacted[k] = v
		}
	}
	return redacted
}

// Mask shortens a sensitive value for logging, keeping only the edges
func Mask(data string) string {
	if len(data) <= 8 {
		return "***"
	}
	return data[:4] + "***" + data[len(data)-4:]
}
