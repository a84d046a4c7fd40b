// Package notification posts team messages to a Slack incoming webhook.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/railflow/salesops/internal/usecase/interfaces"
)

const requestTimeout = 5 * time.Second

// SlackWebhook is the best-effort notifier. An empty webhook URL disables it:
// PostMessage becomes a no-op so callers need no conditional wiring.
type SlackWebhook struct {
	webhookURL string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*SlackWebhook)(nil)

func NewSlackWebhook(webhookURL string) *SlackWebhook {
	return &SlackWebhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (s *SlackWebhook) PostMessage(ctx context.Context, text string) error {
	if s.webhookURL == "" {
		return nil
	}

	raw, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("slack: marshal message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("slack: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack: post message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack: post message: unexpected status %d", resp.StatusCode)
	}
	return nil
}
