package services

import (
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jivitesh-dev/portfolio_api/model"
)

func newTestEmailService(apiURL string) *EmailService {
	svc := &EmailService{
		apiKey:            "test-key",
		apiURL:            apiURL,
		fromEmail:         "no-reply@example.com",
		fromName:          "Portfolio",
		notificationEmail: "owner@example.com",
		client:            &http.Client{Timeout: 5 * time.Second},
		templates:         make(map[string]*template.Template),
	}
	if err := svc.loadTemplates(); err != nil {
		panic(err)
	}
	return svc
}

func testMessage() model.ContactMessage {
	return model.ContactMessage{
		ID:        "msg-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Title:     "Collab idea",
		Message:   "Let's build something great together.",
		Timestamp: "2026-08-30T12:00:00Z",
	}
}

func TestSend_PostsBearerCredential(t *testing.T) {
	var gotAuth string
	var gotPayload sendEmailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := newTestEmailService(server.URL)

	assert.True(t, svc.Send("ada@example.com", "Hello", "<p>hi</p>"))
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Portfolio <no-reply@example.com>", gotPayload.From)
	assert.Equal(t, []string{"ada@example.com"}, gotPayload.To)
	assert.Equal(t, "Hello", gotPayload.Subject)
}

func TestSend_ProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	svc := newTestEmailService(server.URL)
	assert.False(t, svc.Send("ada@example.com", "Hello", "<p>hi</p>"))
}

func TestSend_NotConfiguredSkips(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	svc := newTestEmailService(server.URL)
	svc.apiKey = ""

	assert.False(t, svc.Send("ada@example.com", "Hello", "<p>hi</p>"))
	assert.Zero(t, requests)
}

func TestSendNotification_RendersMessageFields(t *testing.T) {
	var gotPayload sendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := newTestEmailService(server.URL)
	msg := testMessage()

	require.True(t, svc.SendNotification(msg))
	assert.Equal(t, []string{"owner@example.com"}, gotPayload.To)
	assert.Equal(t, "New Contact: Collab idea", gotPayload.Subject)
	assert.Contains(t, gotPayload.HTML, "Ada")
	assert.Contains(t, gotPayload.HTML, "ada@example.com")
	assert.Contains(t, gotPayload.HTML, "Collab idea")
	assert.Contains(t, gotPayload.HTML, "2026-08-30T12:00:00Z")
}

func TestSendConfirmation_AddressesSubmitter(t *testing.T) {
	var gotPayload sendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := newTestEmailService(server.URL)

	require.True(t, svc.SendConfirmation(testMessage()))
	assert.Equal(t, []string{"ada@example.com"}, gotPayload.To)
	assert.Contains(t, gotPayload.HTML, "Thank you, Ada")
	assert.Contains(t, gotPayload.HTML, "24-48 hours")
}

func TestSendNotification_NoOwnerConfigured(t *testing.T) {
	svc := newTestEmailService("http://localhost:0")
	svc.notificationEmail = ""

	assert.False(t, svc.SendNotification(testMessage()))
}
