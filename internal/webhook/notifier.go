// Package webhook posts registration events to an external automation hook.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vitrine-app/vitrine/internal/logger"
)

// RegistrationEvent is the payload sent when a new account is created
type RegistrationEvent struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Notifier delivers webhook payloads over plain HTTP POST. Delivery is best
// effort: a failed hook is logged and never fails the operation that
// triggered it. An empty URL disables the notifier.
type Notifier struct {
	url    string
	client *http.Client
}

// NewNotifier creates a new webhook notifier instance
func NewNotifier(url string, timeout time.Duration) *Notifier {
	return &Notifier{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled reports whether a webhook URL is configured
func (n *Notifier) Enabled() bool {
	return n.url != ""
}

// NotifyRegistration posts a registration event to the configured hook
func (n *Notifier) NotifyRegistration(ctx context.Context, event RegistrationEvent) error {
	if !n.Enabled() {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Log.Warn().
			Err(err).
			Str("url", n.url).
			Msg("Registration webhook delivery failed")
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Warn().
			Int("status", resp.StatusCode).
			Str("url", n.url).
			Msg("Registration webhook rejected")
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
