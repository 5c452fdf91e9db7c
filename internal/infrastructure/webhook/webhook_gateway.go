package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var (
	ErrMissingWebhookURL = errors.New("missing WEBHOOK_URL")
	ErrInvalidWebhookURL = errors.New("invalid WEBHOOK_URL")
)

// MockResponseText is what the gateway answers with in mock mode.
const MockResponseText = "Accepted (mock)"

// WebhookGateway posts proposal documents to the automation webhook (n8n).
type WebhookGateway struct {
	url      string
	client   *http.Client
	mockMode bool
	logger   *zap.Logger
}

// NewWebhookGateway builds a gateway for rawURL. timeout bounds the whole
// exchange, body read included; zero means no client-side limit.
func NewWebhookGateway(rawURL string, timeout time.Duration, mockMode bool, logger *zap.Logger) (*WebhookGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("webhook")

	if mockMode {
		logger.Info("mock mode enabled")
		return &WebhookGateway{mockMode: true, logger: logger}, nil
	}

	if rawURL == "" {
		return nil, ErrMissingWebhookURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWebhookURL, rawURL)
	}
	logger.Info("webhook client initialized", zap.String("host", u.Host), zap.Duration("timeout", timeout))

	return &WebhookGateway{
		url:    rawURL,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

// Post sends body as-is and returns the upstream status with its body as text.
func (g *WebhookGateway) Post(ctx context.Context, body json.RawMessage) (int, string, error) {
	if g.mockMode {
		g.logger.Debug("mock post", zap.Int("payload_len", len(body)))
		return http.StatusOK, MockResponseText, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("post failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return 0, "", err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.Warn("reading response failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return resp.StatusCode, "", fmt.Errorf("read webhook response: %w", err)
	}
	g.logger.Debug("post done",
		zap.Int("status", resp.StatusCode),
		zap.Int("payload_len", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp.StatusCode, string(text), nil
}
