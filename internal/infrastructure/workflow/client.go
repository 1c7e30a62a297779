package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/subwatch-inc/subwatch/internal/shared/config"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

// Client publishes reminder workflow runs to an Upstash-compatible
// message scheduler. Each trigger enqueues one delivery to the callback
// URL with the subscription SID in the body; retries are disabled so a
// failed delivery surfaces instead of silently repeating side effects.
type Client struct {
	publishURL  string
	token       string
	callbackURL string
	httpClient  *http.Client
	logger      logger.Interface
}

type triggerPayload struct {
	SubscriptionID string `json:"subscriptionId"`
}

type publishResponse struct {
	MessageID string `json:"messageId"`
}

func NewClient(cfg *config.WorkflowConfig, logger logger.Interface) *Client {
	return &Client{
		publishURL:  strings.TrimRight(cfg.PublishURL, "/"),
		token:       cfg.Token,
		callbackURL: cfg.CallbackURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}
}

// Trigger schedules one reminder workflow run and returns the run
// identifier assigned by the scheduler.
func (c *Client) Trigger(ctx context.Context, subscriptionSID string) (string, error) {
	body, err := json.Marshal(triggerPayload{SubscriptionID: subscriptionSID})
	if err != nil {
		return "", fmt.Errorf("failed to encode trigger payload: %w", err)
	}

	endpoint := c.publishURL + "/" + url.PathEscape(c.callbackURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build trigger request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Upstash-Retries", "0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to publish workflow trigger: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", fmt.Errorf("failed to read scheduler response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("workflow scheduler rejected trigger",
			"status", resp.StatusCode,
			"subscription_sid", subscriptionSID,
		)
		return "", fmt.Errorf("workflow scheduler returned status %d", resp.StatusCode)
	}

	var published publishResponse
	if err := json.Unmarshal(respBody, &published); err != nil {
		return "", fmt.Errorf("failed to decode scheduler response: %w", err)
	}
	if published.MessageID == "" {
		return "", fmt.Errorf("scheduler response missing message ID")
	}

	c.logger.Debugw("workflow trigger published",
		"subscription_sid", subscriptionSID,
		"run_id", published.MessageID,
	)
	return published.MessageID, nil
}
