package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullContactMessage() ContactMessage {
	return ContactMessage{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Subject:   "Branding",
		Message:   "Hello",
	}
}

func TestValidateAcceptsFullMessage(t *testing.T) {
	assert.NoError(t, fullContactMessage().Validate())
}

func TestValidateRejectsMissingFields(t *testing.T) {
	blank := func(mutate func(*ContactMessage)) ContactMessage {
		msg := fullContactMessage()
		mutate(&msg)
		return msg
	}

	cases := map[string]ContactMessage{
		"firstName": blank(func(m *ContactMessage) { m.FirstName = "" }),
		"lastName":  blank(func(m *ContactMessage) { m.LastName = "  " }),
		"email":     blank(func(m *ContactMessage) { m.Email = "" }),
		"subject":   blank(func(m *ContactMessage) { m.Subject = "" }),
		"message":   blank(func(m *ContactMessage) { m.Message = "\t" }),
	}
	for field, msg := range cases {
		err := msg.Validate()
		require.Error(t, err, field)
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidateRejectsMalformedEmail(t *testing.T) {
	for _, email := range []string{"plain", "no-at.example.com", "no-tld@example", "two words@example.com", "@example.com"} {
		msg := fullContactMessage()
		msg.Email = email
		assert.Error(t, msg.Validate(), email)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.example.co.uk"))
	assert.False(t, ValidEmail("jane@example"))
	assert.False(t, ValidEmail("jane example@example.com"))
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", fullContactMessage().FullName())
	assert.Equal(t, "Jane", ContactMessage{FirstName: "Jane"}.FullName())
}
