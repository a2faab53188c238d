package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() ContactRequest {
	return ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Title:   "Collab idea",
		Message: "Let's build something great together.",
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"user.name+tag@sub.domain.co",
		"UPPER@EXAMPLE.ORG",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"not-an-email",
		"a@b",
		"user@.com",
		"@example.com",
		"user@example",
		"user @example.com",
		"",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestContactRequest_Validate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

func TestContactRequest_MissingFields(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*ContactRequest)
	}{
		{"name", func(r *ContactRequest) { r.Name = "" }},
		{"email", func(r *ContactRequest) { r.Email = "" }},
		{"title", func(r *ContactRequest) { r.Title = "" }},
		{"message", func(r *ContactRequest) { r.Message = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestContactRequest_InvalidEmail(t *testing.T) {
	req := validRequest()
	req.Email = "not-an-email"

	err := req.Validate()
	assert.Error(t, err)
	assert.Equal(t, "Invalid email format", FirstValidationError(err))
}

func TestContactRequest_Sanitized(t *testing.T) {
	req := ContactRequest{
		Name:    "<script>alert(1)</script>",
		Email:   " ada@example.com ",
		Title:   "  Hello  ",
		Message: strings.Repeat("x", MaxMessageLength+50),
		Company: "<Acme>",
	}

	clean := req.Sanitized()
	assert.Equal(t, "scriptalert(1)/script", clean.Name)
	assert.Equal(t, "ada@example.com", clean.Email)
	assert.Equal(t, "Hello", clean.Title)
	assert.Len(t, clean.Message, MaxMessageLength)
	assert.Equal(t, "Acme", clean.Company)
}

func TestContactRequest_WhitespaceOnlyFieldFailsAfterSanitize(t *testing.T) {
	req := validRequest()
	req.Name = "   "

	clean := req.Sanitized()
	err := clean.Validate()
	assert.Error(t, err)
	assert.Equal(t, "Name is required", FirstValidationError(err))
}

func TestFirstValidationError_UnknownError(t *testing.T) {
	assert.Equal(t, "Invalid request", FirstValidationError(assert.AnError))
}
