package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"board-automation-api/internal/metrics"
)

// MailRequest is the payload sent to the mail service
type MailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body,omitempty"`
}

// MailClient defines the interface for the mail service
type MailClient interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// mailClient implements MailClient against the notification service
type mailClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewMailClient creates a new mail service client
func NewMailClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) MailClient {
	return &mailClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// SendMail posts a mail request to the notification service
func (c *mailClient) SendMail(ctx context.Context, to, subject, body string) error {
	jsonBody, err := json.Marshal(MailRequest{To: to, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/internal/mail", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordExternalAPIError("mail", "send_mail")
		}
		c.logger.Error("Mail API request failed",
			zap.String("to", to),
			zap.Error(err),
		)
		return fmt.Errorf("mail API send failed: %w", err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordExternalAPIRequest("mail", "send_mail", resp.StatusCode, time.Since(startTime))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.metrics != nil {
			c.metrics.RecordExternalAPIError("mail", "send_mail")
		}
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	return nil
}
