package chat

import "regexp"

// PII patterns masked out of every relayed stream event before it reaches
// the client.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d{2,3}[\s\-]?\d{3,4}[\s\-]?\d{4}`)
)

const maskReplacement = "***"

// MaskPII replaces email addresses and phone numbers with a fixed mask.
func MaskPII(text string) string {
	masked := emailPattern.ReplaceAllString(text, maskReplacement)
	masked = phonePattern.ReplaceAllString(masked, maskReplacement)
	return masked
}
