package logging

import "strings"

const redactedMessage = "[REDACTED - sensitive information filtered]"

// sensitiveWords are matched case-insensitively against the whole message.
// Provider stanzas carry credential references, so anything that looks like
// one is dropped rather than partially masked.
var sensitiveWords = []string{
	"password",
	"secret",
	"api_key",
	"apikey",
	"access_token",
	"refresh_token",
	"bearer",
	"credential_ref",
}

func redact(msg string) string {
	lower := strings.ToLower(msg)
	for _, w := range sensitiveWords {
		if strings.Contains(lower, w) {
			return redactedMessage
		}
	}
	return msg
}
