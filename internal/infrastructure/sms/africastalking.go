// Package sms sends messages through the Africa's Talking gateway. Demo mode
// skips the gateway entirely and fabricates a delivery receipt, which keeps
// local development and tests off the network.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config captures the gateway settings.
type Config struct {
	APIKey   string
	Username string
	SenderID string
	BaseURL  string
	DemoMode bool
}

// Gateway is the Africa's Talking SMS client.
type Gateway struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

// NewGateway builds a gateway client.
func NewGateway(cfg Config, log zerolog.Logger) *Gateway {
	return &Gateway{
		cfg:  cfg,
		http: &http.Client{Timeout: defaultTimeout},
		log:  log,
	}
}

type gatewayResponse struct {
	SMSMessageData struct {
		Recipients []struct {
			Status    string `json:"status"`
			MessageID string `json:"messageId"`
			Cost      string `json:"cost"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// Send delivers one message to an already-normalised +254 number.
func (g *Gateway) Send(ctx context.Context, phone, message string) (*ports.SMSResult, error) {
	if g.cfg.DemoMode {
		g.log.Info().Str("phone", phone).Msg("sms demo mode: message not sent to gateway")
		return &ports.SMSResult{
			MessageID: fmt.Sprintf("demo_%d", time.Now().UnixMilli()),
			Cost:      "KES 2.00",
		}, nil
	}

	form := url.Values{
		"username": {g.cfg.Username},
		"to":       {phone},
		"message":  {message},
		"from":     {g.cfg.SenderID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apiKey", g.cfg.APIKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sms gateway: %w", err)
	}
	defer resp.Body.Close()

	var out gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode sms response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, domain.ErrSMSRejected
	}
	if len(out.SMSMessageData.Recipients) == 0 || out.SMSMessageData.Recipients[0].Status != "Success" {
		return nil, domain.ErrSMSRejected
	}

	r := out.SMSMessageData.Recipients[0]
	return &ports.SMSResult{MessageID: r.MessageID, Cost: r.Cost}, nil
}
