package insurai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/config"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

func init() {
	// The backend's money fields are plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Client talks to the external InsurAI REST backend. The backend owns every
// business rule; this client only moves requests and classifies answers.
type Client struct {
	baseURL  string
	http     *http.Client
	log      *logger.Logger
	retryMax uint64
}

// New builds a client for the configured backend base URL (including the /api
// prefix).
func New(cfg config.APIConfig, log *logger.Logger) *Client {
	retryMax := cfg.RetryMax
	if retryMax < 0 {
		retryMax = 0
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout()},
		log:      log,
		retryMax: uint64(retryMax),
	}
}

// APIError carries the backend's status and message. It unwraps to one of the
// domain sentinels so call sites can branch with errors.Is.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("insurai: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.kind }

// Reason extracts a user-facing message from an error, preferring what the
// backend said.
func Reason(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// getJSON issues an idempotent read with a bounded retry on transport and 5xx
// failures. Mutations never go through here: a duplicated side effect is worse
// than a failed click.
func (c *Client) getJSON(ctx context.Context, tok, path string, out any) error {
	op := func() error {
		err := c.roundTrip(ctx, tok, http.MethodGet, path, nil, "", out)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, domain.ErrServer) {
			return err
		}
		return backoff.Permanent(err)
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, c.retryMax), ctx))
}

// sendJSON issues a single non-retried request with an optional JSON body.
func (c *Client) sendJSON(ctx context.Context, tok, method, path string, body, out any) error {
	var payload []byte
	contentType := ""
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		contentType = "application/json"
	}
	return c.roundTrip(ctx, tok, method, path, payload, contentType, out)
}

func (c *Client) roundTrip(ctx context.Context, tok, method, path string, body []byte, contentType string, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.execute(req, out)
}

// execute runs a prepared request and decodes the response into out when
// non-nil.
func (c *Client) execute(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	msg := strings.TrimSpace(string(body))
	// Error bodies are usually plain text; JSON error objects keep their raw
	// form and are only used for logging.
	if msg == "" || strings.HasPrefix(msg, "{") || strings.HasPrefix(msg, "<") {
		msg = http.StatusText(resp.StatusCode)
	}

	var kind error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		kind = domain.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		kind = domain.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		kind = domain.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		kind = domain.ErrConflict
	case resp.StatusCode < 500:
		kind = domain.ErrValidation
	default:
		kind = domain.ErrServer
	}
	return &APIError{Status: resp.StatusCode, Message: msg, kind: kind}
}
