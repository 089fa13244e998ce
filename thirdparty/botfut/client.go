package botfut

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/botfut/botfut/cmd/config"
	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/utils/logger"
	"github.com/botfut/botfut/utils/mask"
)

const CountryCode = "55"

var logMessage = "[BOTFUT-CLIENT]"

var resourcePath = map[constant.FormKind]string{
	constant.FormPlayer:      "players",
	constant.FormGame:        "games",
	constant.FormTransaction: "transactions",
	constant.FormMembership:  "memberships",
	constant.FormBotConfig:   "bot-config",
}

// phoneFields are the payload keys holding national phone digits.
var phoneFields = []string{"phone", "player_phone", "bot_phone"}

var retryableHTTPCodes = map[int]struct{}{
	http.StatusTooManyRequests:    {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// Client talks to the Bot Fut REST API.
type Client interface {
	SendSubmission(ctx context.Context, kind constant.FormKind, payload json.RawMessage) error
}

// StatusError is returned for non-2xx answers.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("botfut api returned status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether a later attempt may succeed.
func (e *StatusError) Retryable() bool {
	_, ok := retryableHTTPCodes[e.StatusCode]
	return ok
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *resty.Client
}

// New builds a client that makes exactly one request per call. Callers decide whether to retry
// with StatusError.Retryable.
func New(cfg config.BotFutConfig) Client {
	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: resty.New().SetTimeout(cfg.Timeout),
	}
}

func (c *client) SendSubmission(ctx context.Context, kind constant.FormKind, payload json.RawMessage) error {
	path, ok := resourcePath[kind]
	if !ok {
		return fmt.Errorf("unknown form kind %q", kind)
	}

	body, err := withCountryCode(payload)
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/%s", c.baseURL, path)
	logFields := []zap.Field{zap.String("url", url), zap.String("kind", string(kind))}

	httpRes, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("X-API-Key", c.apiKey).
		SetBody(body).
		Post(url)
	if err != nil {
		logger.Error(logMessage+" err Post", append(logFields, zap.Error(err))...)
		return fmt.Errorf("send %s: %w", kind, err)
	}

	if httpRes.IsError() || httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		logger.Error(logMessage+" unexpected status",
			append(logFields, zap.Int("status", httpRes.StatusCode()), zap.ByteString("body", httpRes.Body()))...)
		return &StatusError{StatusCode: httpRes.StatusCode(), Body: string(httpRes.Body())}
	}

	logger.Info(logMessage+" delivered", logFields...)
	return nil
}

// withCountryCode prefixes national phone numbers with the Brazilian country code.
func withCountryCode(payload json.RawMessage) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	for _, key := range phoneFields {
		v, ok := fields[key].(string)
		if !ok || v == "" {
			continue
		}
		digits := mask.RawDigits(v)
		if mask.IsValidBrazilianPhone(digits) {
			fields[key] = CountryCode + digits
		}
	}
	return fields, nil
}
