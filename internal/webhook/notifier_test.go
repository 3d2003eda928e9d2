package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Disabled(t *testing.T) {
	notifier := NewNotifier("", time.Second)

	assert.False(t, notifier.Enabled())
	assert.NoError(t, notifier.NotifyRegistration(context.Background(), RegistrationEvent{
		Name:  "Jane",
		Email: "jane@example.com",
	}))
}

func TestNotifier_DeliversPayload(t *testing.T) {
	var got RegistrationEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL, time.Second)
	require.True(t, notifier.Enabled())

	err := notifier.NotifyRegistration(context.Background(), RegistrationEvent{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestNotifier_RejectionIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL, time.Second)

	err := notifier.NotifyRegistration(context.Background(), RegistrationEvent{Email: "jane@example.com"})
	assert.Error(t, err)
}

func TestNotifier_UnreachableHost(t *testing.T) {
	// Closed server: transport error rather than HTTP status
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	notifier := NewNotifier(server.URL, time.Second)

	err := notifier.NotifyRegistration(context.Background(), RegistrationEvent{Email: "jane@example.com"})
	assert.Error(t, err)
}
