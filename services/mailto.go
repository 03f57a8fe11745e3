package services

import (
	"net/url"
	"strings"

	"github.com/vkosev/design-site-backend/models"
)

// crlf is the encoded line break mail clients expect in a mailto body.
const crlf = "%0D%0A"

// BuildMailto constructs the pre-filled mail-client compose link used when
// the primary delivery path fails: recipient, percent-encoded subject, and a
// body carrying the sender's name, email, and message with each line
// percent-encoded and joined by CRLF.
func BuildMailto(recipient string, msg models.ContactMessage) string {
	lines := []string{
		"Name: " + msg.FullName(),
		"Email: " + msg.Email,
		"",
		"Message:",
	}
	encoded := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		encoded = append(encoded, encodeComponent(line))
	}
	encoded = append(encoded, encodeComponent(msg.Message))
	body := strings.Join(encoded, crlf)

	return "mailto:" + recipient + "?subject=" + encodeComponent(msg.Subject) + "&body=" + body
}

// encodeComponent percent-encodes a string the way browsers encode URI
// components: spaces become %20, not +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
