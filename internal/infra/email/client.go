package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/errs"
	"newsletter-delivery/internal/usecase/shared"

	"github.com/sony/gobreaker"
)

const (
	tokenHeader    = "X-Postmark-Server-Token"
	maxErrBodySize = 4 << 10
)

type sendEmailRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// Client sends transactional email through a Postmark-compatible HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sender     string
	authToken  string
	breaker    *gobreaker.CircuitBreaker
}

func NewClient(cfg config.EmailConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg config.EmailConfig, httpClient *http.Client) *Client {
	settings := gobreaker.Settings{
		Name:    "email-api",
		Timeout: cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// Rejections are the provider answering correctly; they must not open the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errs.Is(err, errs.ErrDeliveryRejected)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		sender:     cfg.Sender,
		authToken:  cfg.AuthToken,
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

var _ shared.EmailSender = (*Client)(nil)

// Send returns nil on 2xx. Failures are marked ErrDelivery, and additionally
// ErrDeliveryRejected when the provider refused the message for good.
func (c *Client) Send(ctx context.Context, msg shared.EmailMessage) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.send(ctx, msg)
	})
	if err == nil {
		return nil
	}
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return errs.Mark(errs.Wrap(err, "email api unavailable"), errs.ErrDelivery)
	}
	return err
}

func (c *Client) send(ctx context.Context, msg shared.EmailMessage) error {
	payload, err := json.Marshal(sendEmailRequest{
		From:     c.sender,
		To:       msg.Recipient,
		Subject:  msg.Subject,
		HtmlBody: msg.HTMLBody,
		TextBody: msg.TextBody,
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to encode email request"), errs.ErrDeliveryRejected)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(payload))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to build email request"), errs.ErrDeliveryRejected)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(tokenHeader, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "email request failed"), errs.ErrDelivery)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
	statusErr := errs.New(fmt.Sprintf("email api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	statusErr = errs.Mark(statusErr, errs.ErrDelivery)
	if isPermanent(resp.StatusCode) {
		return errs.Mark(statusErr, errs.ErrDeliveryRejected)
	}
	return statusErr
}

func isPermanent(status int) bool {
	if status == http.StatusRequestTimeout || status == http.StatusTooManyRequests {
		return false
	}
	return status >= 400 && status < 500
}
