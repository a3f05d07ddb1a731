// Package bank implements the HTTP client for the acquiring bank simulator.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
	"github.com/akylbek/payment-system/payment-gateway/internal/telemetry"
)

// ErrUnavailable marks failures where the bank could not produce a decision:
// transport errors, a 503 response, or an empty/undecodable success body.
// Other non-2xx statuses are surfaced as distinct unexpected errors.
var ErrUnavailable = errors.New("acquiring bank unavailable")

const defaultTimeout = 10 * time.Second

type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Authorize submits a single authorization attempt to the bank. There are no
// retries; the call blocks for at most the configured timeout.
func (c *HTTPClient) Authorize(ctx context.Context, req models.BankAuthRequest) (models.BankAuthResponse, error) {
	telemetry.Logger.Info("bank call started",
		zap.String("currency", req.Currency),
		zap.Int64("amount", req.Amount),
	)

	body, err := json.Marshal(req)
	if err != nil {
		return models.BankAuthResponse{}, fmt.Errorf("encoding bank request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return models.BankAuthResponse{}, fmt.Errorf("building bank request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if corr := telemetry.CorrelationID(ctx); corr != "" {
		httpReq.Header.Set(telemetry.CorrelationHeader, corr)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		telemetry.Logger.Error("bank call transport failure",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return models.BankAuthResponse{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	telemetry.BankRequestDuration.Observe(duration.Seconds())

	if resp.StatusCode == http.StatusServiceUnavailable {
		telemetry.Logger.Error("bank call failed",
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration),
		)
		return models.BankAuthResponse{}, fmt.Errorf("%w: bank returned 503", ErrUnavailable)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		telemetry.Logger.Error("bank call failed",
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration),
		)
		return models.BankAuthResponse{}, fmt.Errorf("unexpected bank status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return models.BankAuthResponse{}, fmt.Errorf("%w: empty bank response body", ErrUnavailable)
	}

	var decision models.BankAuthResponse
	if err := json.Unmarshal(raw, &decision); err != nil {
		return models.BankAuthResponse{}, fmt.Errorf("%w: undecodable bank response body", ErrUnavailable)
	}

	telemetry.Logger.Info("bank call completed",
		zap.Bool("authorized", decision.Authorized),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
	)
	return decision, nil
}
