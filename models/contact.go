package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Matches the loose local@domain.tld shape checked by the relay endpoint.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address has the basic local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ContactMessage is one visitor submission from the contact form. It exists
// only for the duration of a single submission attempt and is never persisted.
type ContactMessage struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Validate checks that all five fields are filled and the email address has a
// basic local@domain.tld shape. It runs before any network call is made.
func (m ContactMessage) Validate() error {
	for field, value := range map[string]string{
		"firstName": m.FirstName,
		"lastName":  m.LastName,
		"email":     m.Email,
		"subject":   m.Subject,
		"message":   m.Message,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("missing required field: %s", field)
		}
	}
	if !emailPattern.MatchString(m.Email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// FullName joins the sender's first and last name for display in the relayed
// email and the mail-client fallback body.
func (m ContactMessage) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}
