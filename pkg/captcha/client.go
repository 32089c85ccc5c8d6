package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

const (
	// DefaultVerifyURL is the reCAPTCHA siteverify endpoint.
	DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

	// BypassSecret makes every verification succeed without contacting the endpoint.
	BypassSecret = "test_success"

	defaultTimeout = 10 * time.Second

	// Verdicts are tiny; anything larger is not a siteverify response.
	maxBodySize = 64 << 10
)

// Response is the siteverify verdict.
type Response struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts,omitzero"`
	Hostname    string    `json:"hostname,omitempty"`
	ErrorCodes  []string  `json:"error-codes,omitempty"`
}

// Client calls the verify endpoint.
type Client struct {
	verifyURL  string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithVerifyURL overrides the endpoint. Panics on an empty URL.
func WithVerifyURL(u string) Option {
	return func(c *Client) {
		if strings.TrimSpace(u) == "" {
			panic(ErrInvalidVerifyURL)
		}
		c.verifyURL = u
	}
}

// WithHTTPClient sets the transport. Nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each Verify call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client talking to DefaultVerifyURL.
func New(opts ...Option) *Client {
	c := &Client{
		verifyURL:  DefaultVerifyURL,
		timeout:    defaultTimeout,
		httpClient: http.DefaultClient,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Verify asks the endpoint whether response is a valid solution for secret.
func (c *Client) Verify(ctx context.Context, secret, response, remoteIP string) (Response, error) {
	if secret == BypassSecret {
		return Response{Success: true}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", response)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, fmt.Errorf("%w: create request: %v", ErrVerificationFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "captcha verify request failed",
			logger.Component("captcha"),
			logger.RemoteAddr(remoteIP),
			logger.Error(err),
		)
		return Response{}, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Response{}, fmt.Errorf("%w: read response: %v", ErrVerificationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("%w: status %d", ErrVerificationFailed, resp.StatusCode)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return Response{}, fmt.Errorf("%w: parse response: %v", ErrVerificationFailed, err)
	}

	c.logger.DebugContext(ctx, "captcha verified",
		logger.Component("captcha"),
		logger.RemoteAddr(remoteIP),
		slog.Bool("success", out.Success),
		slog.Any("error_codes", out.ErrorCodes),
		logger.Duration(time.Since(start)),
	)

	return out, nil
}
