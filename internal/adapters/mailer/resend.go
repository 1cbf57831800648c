package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/expensemaster/expense_master_app/internal/core/ports"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendMailer dispatches mail through the Resend HTTP API.
type ResendMailer struct {
	apiKey    string
	fromEmail string
	client    *http.Client
}

var _ ports.Mailer = (*ResendMailer)(nil)

// NewResendMailer creates a mailer for the given API key and sender
// address. The timeout bounds each dispatch call.
func NewResendMailer(apiKey, fromEmail string, timeout time.Duration) *ResendMailer {
	return &ResendMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: timeout},
	}
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) Send(ctx context.Context, to string, subject string, body string) error {
	if m.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	payload, err := json.Marshal(emailPayload{
		From:    m.fromEmail,
		To:      []string{to},
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to dispatch email to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
