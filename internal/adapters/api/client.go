package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultTimeout   = 12 * time.Second
	HeaderUserID     = "X-User-Id"
	HeaderRequestID  = "X-Request-Id"
	maxResponseBytes = 1 << 20
)

var publicPaths = map[string]struct{}{
	"/auth/demo": {},
	"/health":    {},
}

// Client talks to the matching service. Every call is bounded by Timeout and
// authenticated with the stored identity unless the path is public.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Identities ports.IdentityReader
	Logger     zerolog.Logger
}

func NewClient(baseURL string, identities ports.IdentityReader, logger zerolog.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		Timeout:    DefaultTimeout,
		Identities: identities,
		Logger:     logger,
	}
}

type callOptions struct {
	token    string
	hasToken bool
}

type CallOption func(*callOptions)

// WithToken replaces the stored identity for a single call.
func WithToken(raw string) CallOption {
	return func(o *callOptions) {
		o.token = raw
		o.hasToken = true
	}
}

// RequiresAuth reports whether path needs an identity header.
func RequiresAuth(path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	_, public := publicPaths[strings.TrimRight(path, "/")]

	return !public
}

// Call sends body as JSON and decodes a successful response into out. out may
// be nil. An empty or non-JSON success body leaves out untouched.
func (c *Client) Call(ctx context.Context, method, path string, body any, out any, opts ...CallOption) error {
	var options callOptions
	for _, opt := range opts {
		opt(&options)
	}

	token, err := c.resolveToken(ctx, method, path, options)
	if err != nil {
		return err
	}

	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		payload = bytes.NewReader(data)
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if token.Valid() {
		req.Header.Set(HeaderUserID, string(token))
	}

	started := time.Now()
	logEvent := func(status int) *zerolog.Event {
		return c.Logger.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("duration", time.Since(started))
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		logEvent(0).Err(err).Msg("request failed")
		return transportError(ctx, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logEvent(resp.StatusCode).Err(err).Msg("read response failed")
		return transportError(ctx, method, path, err)
	}
	logEvent(resp.StatusCode).Msg("request done")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newResponseError(method, path, resp.StatusCode, data)
	}

	// A success body that is not JSON reads as an empty object.
	if out == nil || len(bytes.TrimSpace(data)) == 0 || !json.Valid(data) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindApplication, Method: method, Path: path, Status: resp.StatusCode, Message: fmt.Sprintf("decode %s response: %v", path, err), Err: err}
	}

	return nil
}

// resolveToken picks the override or the stored token. Protected paths fail
// with KindNoSession before any request when no valid token is available.
func (c *Client) resolveToken(ctx context.Context, method, path string, options callOptions) (domain.Token, error) {
	requiresAuth := RequiresAuth(path)

	raw := options.token
	if !options.hasToken && c.Identities != nil {
		identity, ok, err := c.Identities.Get(ctx)
		switch {
		case errors.Is(err, domain.ErrCorruptIdentity):
			if requiresAuth {
				return "", &Error{Kind: KindNoSession, Method: method, Path: path, Message: msgInvalidSession, Corrupt: true, Err: err}
			}
		case err != nil:
			if requiresAuth {
				return "", &Error{Kind: KindNoSession, Method: method, Path: path, Message: msgNoSession, Err: err}
			}
		case ok:
			raw = string(identity.UserID)
		}
	}

	token := domain.Token(domain.CleanToken(raw))
	if !requiresAuth {
		return token, nil
	}
	if token == "" {
		return "", &Error{Kind: KindNoSession, Method: method, Path: path, Message: msgNoSession}
	}
	if !token.Valid() {
		return "", &Error{Kind: KindNoSession, Method: method, Path: path, Message: msgInvalidSession, Corrupt: true, Err: domain.ErrCorruptIdentity}
	}

	return token, nil
}

// transportError classifies a failure that produced no HTTP status. A caller
// cancellation is returned as such rather than as a service failure.
func transportError(ctx context.Context, method, path string, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%s %s: %w", method, path, ctx.Err())
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Method: method, Path: path, Message: "The service did not answer in time.", Err: err}
	}

	return &Error{Kind: KindNetworkUnreachable, Method: method, Path: path, Message: "The service is unreachable.", Err: err}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// Query encodes params as a query string, dropping empty values. It returns
// "" when nothing is left.
func Query(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		values.Set(key, value)
	}
	if len(values) == 0 {
		return ""
	}

	return "?" + values.Encode()
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/"), nil
}
