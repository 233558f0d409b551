// Package trigger fires event notification webhooks. The platform drafts the
// actual emails elsewhere; this only delivers the event payload.
package trigger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/circuitbreaker"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/httpclient"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/metrics"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/retry"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Notifier delivers event payloads to configured webhook URLs. Failures are
// logged and counted but never block the calling request.
type Notifier struct {
	httpClient httpclient.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewNotifier creates a Notifier with a shared circuit breaker for all events
func NewNotifier(httpClient httpclient.Client) *Notifier {
	return &Notifier{
		httpClient: httpClient,
		breaker:    circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("webhooks")),
	}
}

// CallAsync posts the payload to webhookURL in a background goroutine.
// A blank URL means the event is not wired and is skipped silently.
func (n *Notifier) CallAsync(webhookURL, event string, payload map[string]interface{}) {
	if webhookURL == "" {
		return
	}

	go func() {
		if err := n.call(context.Background(), webhookURL, event, payload); err != nil {
			metrics.WebhookCalls.WithLabelValues(event, "error").Inc()
			logger.Error("Failed to deliver webhook",
				zap.String("event", event),
				zap.String("url", webhookURL),
				zap.Error(err))
			return
		}
		metrics.WebhookCalls.WithLabelValues(event, "success").Inc()
	}()
}

func (n *Notifier) call(ctx context.Context, webhookURL, event string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	return retry.Do(ctx, retry.WebhookConfig(), "webhook:"+event, func() error {
		_, execErr := circuitbreaker.Execute(n.breaker, func() (struct{}, error) {
			resp, postErr := n.httpClient.Post(webhookURL, "application/json", bytes.NewReader(body))
			if postErr != nil {
				return struct{}{}, postErr
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return struct{}{}, fmt.Errorf("webhook returned status %d", resp.StatusCode)
			}
			return struct{}{}, nil
		})
		return execErr
	})
}
