package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/botfut/botfut/cmd/config"
	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
)

const serviceName = "submission-delivery-consumer"

const maxReasonBytes = 255

// Client calls the internal submission endpoints of the API server.
type Client interface {
	SubmissionStatus(ctx context.Context, submissionID uint64) (constant.SubmissionStatus, error)
	MarkDelivered(ctx context.Context, submissionID uint64) error
	MarkFailed(ctx context.Context, submissionID uint64, reason string) error
}

// StatusError is returned for non-2xx answers of the internal API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("internal api returned status %d: %s", e.StatusCode, e.Body)
}

// Terminal reports whether repeating the call can never succeed: the submission does not exist
// or has already left pending.
func (e *StatusError) Terminal() bool {
	return e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusConflict
}

// IsTerminal reports whether err carries a terminal StatusError.
func IsTerminal(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Terminal()
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *resty.Client
}

func New(cfg config.InternalConfig) Client {
	return &client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: resty.New().
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
			}).
			SetTimeout(cfg.Timeout).
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(cfg.RetryWaitTime),
	}
}

func (c *client) submissionURL(submissionID uint64, action string) string {
	url := fmt.Sprintf("%s/internal/v1/submissions/%d", c.baseURL, submissionID)
	if action != "" {
		url += "/" + action
	}
	return url
}

func (c *client) SubmissionStatus(ctx context.Context, submissionID uint64) (constant.SubmissionStatus, error) {
	var out model.SubmissionStatusResponse
	res, err := c.request(ctx).SetResult(&out).Get(c.submissionURL(submissionID, ""))
	if err != nil {
		return 0, err
	}
	if err := checkStatus(res); err != nil {
		return 0, err
	}

	status, ok := constant.ParseSubmissionStatus(out.Status)
	if !ok {
		return 0, fmt.Errorf("unknown submission status %q", out.Status)
	}
	return status, nil
}

func (c *client) MarkDelivered(ctx context.Context, submissionID uint64) error {
	return c.post(ctx, c.submissionURL(submissionID, "delivered"), nil)
}

func (c *client) MarkFailed(ctx context.Context, submissionID uint64, reason string) error {
	return c.post(ctx, c.submissionURL(submissionID, "failed"),
		model.MarkFailedRequest{Reason: truncateReason(reason)})
}

// truncateReason cuts reason to the column size without splitting a UTF-8 sequence.
func truncateReason(reason string) string {
	if len(reason) <= maxReasonBytes {
		return reason
	}
	cut := maxReasonBytes
	for cut > 0 && !utf8.RuneStart(reason[cut]) {
		cut--
	}
	return reason[:cut]
}

func (c *client) request(ctx context.Context) *resty.Request {
	return c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Accept", "application/json").
		SetHeader("X-Internal-Service", serviceName)
}

func (c *client) post(ctx context.Context, url string, body interface{}) error {
	req := c.request(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	res, err := req.Post(url)
	if err != nil {
		return err
	}
	return checkStatus(res)
}

func checkStatus(res *resty.Response) error {
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return &StatusError{StatusCode: res.StatusCode(), Body: string(res.Body())}
	}
	return nil
}
