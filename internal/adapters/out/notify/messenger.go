package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// WebhookMessenger posts messages to an external transport endpoint, one
// HTTP request per recipient.
type WebhookMessenger struct {
	url    string
	client *http.Client
}

// NewWebhookMessenger creates a messenger posting to the given URL.
func NewWebhookMessenger(url string) *WebhookMessenger {
	return &WebhookMessenger{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type webhookMessage struct {
	Recipient int64  `json:"recipient"`
	Text      string `json:"text"`
}

// Send delivers one message. A non-2xx response counts as a failure.
func (m *WebhookMessenger) Send(ctx context.Context, recipient kernel.UserID, text string) error {
	body, err := json.Marshal(webhookMessage{Recipient: recipient.Int64(), Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

// LogMessenger writes messages to the log instead of delivering them.
// Used when no webhook endpoint is configured.
type LogMessenger struct {
	logger *slog.Logger
}

// NewLogMessenger creates a log-only messenger.
func NewLogMessenger(logger *slog.Logger) *LogMessenger {
	return &LogMessenger{logger: logger.With("component", "log_messenger")}
}

// Send logs the message and always succeeds.
func (m *LogMessenger) Send(_ context.Context, recipient kernel.UserID, text string) error {
	m.logger.Info("notification", "recipient", recipient.Int64(), "text", text)
	return nil
}
