package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) EmailJSConfig {
	return EmailJSConfig{
		BaseURL:    baseURL,
		ServiceID:  "service_ecommerce",
		TemplateID: "template_order",
		PublicKey:  "public_key",
	}
}

func TestSendConfirmation(t *testing.T) {
	var received sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewEmailJSSender(testConfig(srv.URL))
	err := sender.SendConfirmation(context.Background(), "Jane Doe", "jane@example.com", "Notebook x1 - $20.00", "$45.00")

	require.NoError(t, err)
	assert.Equal(t, "service_ecommerce", received.ServiceID)
	assert.Equal(t, "template_order", received.TemplateID)
	assert.Equal(t, "public_key", received.UserID)
	assert.Equal(t, "Jane Doe", received.TemplateParams.ToName)
	assert.Equal(t, "jane@example.com", received.TemplateParams.ToEmail)
	assert.Equal(t, "$45.00", received.TemplateParams.TotalAmount)
}

func TestSendConfirmationNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	sender := NewEmailJSSender(testConfig(srv.URL))
	err := sender.SendConfirmation(context.Background(), "Jane Doe", "jane@example.com", "details", "$45.00")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSendConfirmationIncompleteConfig(t *testing.T) {
	sender := NewEmailJSSender(EmailJSConfig{BaseURL: "https://api.emailjs.com"})

	err := sender.SendConfirmation(context.Background(), "Jane Doe", "jane@example.com", "details", "$45.00")
	assert.Error(t, err)
}
