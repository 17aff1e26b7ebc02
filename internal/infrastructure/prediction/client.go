// Package prediction talks to the external cervical cancer risk model over
// its JSON HTTP contract. The model itself is an external collaborator; this
// package only owns the request/response plumbing and the failure semantics.
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client calls the risk model's /predict and /health endpoints. Every call
// carries a timeout so a hung model never leaves a caller waiting
// indefinitely.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a prediction client. A non-positive timeout falls back to
// defaultTimeout.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Predict submits the mapped questionnaire to the model. Unreachable service,
// timeout, non-2xx status, and a success=false body all surface as
// domain.ErrPredictionUnavailable so the clinician is told to retry rather
// than seeing a stuck spinner or a silently-wrong result.
func (c *Client) Predict(ctx context.Context, req ports.PredictionRequest) (*ports.PredictionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error().Err(err).Msg("prediction service unreachable")
		return nil, domain.ErrPredictionUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error().Int("status", resp.StatusCode).Msg("prediction service returned non-ok status")
		return nil, domain.ErrPredictionUnavailable
	}

	var out ports.PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Error().Err(err).Msg("prediction response malformed")
		return nil, domain.ErrPredictionUnavailable
	}
	if !out.Success {
		c.log.Error().Str("model_error", out.Error).Msg("prediction rejected by model")
		return nil, domain.ErrPredictionUnavailable
	}
	return &out, nil
}

// Health checks the model's health endpoint. "Not healthy" (models_loaded
// false) is reported identically to unreachable.
func (c *Client) Health(ctx context.Context) (*ports.ModelHealth, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, domain.ErrPredictionUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrPredictionUnavailable
	}

	var out ports.ModelHealth
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, domain.ErrPredictionUnavailable
	}
	if !out.ModelsLoaded {
		return nil, domain.ErrPredictionUnavailable
	}
	return &out, nil
}
