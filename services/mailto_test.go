package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkosev/design-site-backend/models"
)

func TestBuildMailto(t *testing.T) {
	msg := models.ContactMessage{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Subject:   "Logo Design",
		Message:   "Hello",
	}

	link := BuildMailto("owner@example.com", msg)

	expected := "mailto:owner@example.com" +
		"?subject=Logo%20Design" +
		"&body=Name%3A%20Jane%20Doe" +
		"%0D%0AEmail%3A%20jane%40example.com" +
		"%0D%0A%0D%0AMessage%3A" +
		"%0D%0AHello"
	assert.Equal(t, expected, link)
}

func TestBuildMailtoEncodesLineBreaksInMessage(t *testing.T) {
	msg := models.ContactMessage{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.co",
		Subject:   "hi",
		Message:   "line one\nline two",
	}

	link := BuildMailto("owner@example.com", msg)

	assert.Contains(t, link, "line%20one%0Aline%20two")
	// Spaces are %20, never +
	assert.NotContains(t, link, "+")
	// The body template separates header lines with CRLF
	assert.Equal(t, 4, strings.Count(link, crlf))
}
