package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookingform/pkg/email"
)

func validMessage() email.TemplateMessage {
	return email.TemplateMessage{
		ServiceID:  "service_x",
		TemplateID: "template_y",
		PublicKey:  "public_key",
		Params:     map[string]string{"fullName": "Jane Doe", "email": "jane@example.com"},
	}
}

func TestEmailJSClient_SendTemplate(t *testing.T) {
	t.Parallel()

	t.Run("posts the send payload", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte("OK"))
		}))
		t.Cleanup(srv.Close)

		client, err := email.NewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL + "/", EmailJSPrivateKey: "secret"})
		require.NoError(t, err)
		require.NoError(t, client.SendTemplate(context.Background(), validMessage()))

		assert.Equal(t, "service_x", got["service_id"])
		assert.Equal(t, "template_y", got["template_id"])
		assert.Equal(t, "public_key", got["user_id"])
		assert.Equal(t, "secret", got["accessToken"])
		assert.Equal(t, map[string]any{"fullName": "Jane Doe", "email": "jane@example.com"}, got["template_params"])
	})

	t.Run("omits access token when not configured", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		}))
		t.Cleanup(srv.Close)

		client := email.MustNewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL})
		require.NoError(t, client.SendTemplate(context.Background(), validMessage()))
		assert.NotContains(t, got, "accessToken")
	})

	t.Run("non 2xx is a failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("The Public Key is invalid"))
		}))
		t.Cleanup(srv.Close)

		client := email.MustNewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL})
		err := client.SendTemplate(context.Background(), validMessage())
		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "400")
		assert.Contains(t, err.Error(), "The Public Key is invalid")
	})

	t.Run("transport error is a failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		client := email.MustNewEmailJSClient(email.Config{EmailJSBaseURL: url})
		assert.ErrorIs(t, client.SendTemplate(context.Background(), validMessage()), email.ErrFailedToSendEmail)
	})

	t.Run("honours client timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { <-release }))
		t.Cleanup(func() {
			close(release)
			srv.Close()
		})

		client := email.MustNewEmailJSClient(email.Config{EmailJSBaseURL: srv.URL, EmailJSTimeout: 50 * time.Millisecond})
		assert.ErrorIs(t, client.SendTemplate(context.Background(), validMessage()), email.ErrFailedToSendEmail)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		client := email.MustNewEmailJSClient(email.Config{EmailJSBaseURL: "https://api.emailjs.com"})

		msg := validMessage()
		msg.ServiceID = ""
		assert.ErrorIs(t, client.SendTemplate(context.Background(), msg), email.ErrInvalidParams)

		msg = validMessage()
		msg.PublicKey = ""
		assert.ErrorIs(t, client.SendTemplate(context.Background(), msg), email.ErrInvalidParams)
	})
}

func TestNewEmailJSClient_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", "not a url", "/relative"} {
		_, err := email.NewEmailJSClient(email.Config{EmailJSBaseURL: base})
		assert.ErrorIs(t, err, email.ErrInvalidConfig, base)
	}
	assert.Panics(t, func() { email.MustNewEmailJSClient(email.Config{}) })
}
