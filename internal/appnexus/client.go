package appnexus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"campaign_syncer/internal/observability"
)

// Config holds AppNexus API configuration.
type Config struct {
	BaseURL        string
	Username       string
	Password       string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the AppNexus console API. It is safe for concurrent use;
// the session token is shared between callers.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	username       string
	password       string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger

	mu    sync.Mutex
	token string
}

// New creates a new AppNexus client.
func New(cfg Config, logger *slog.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		username:       cfg.Username,
		password:       cfg.Password,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "appnexus"),
	}
}

type envelope struct {
	Response response `json:"response"`
}

type response struct {
	Status           string `json:"status"`
	ID               int64  `json:"id"`
	Token            string `json:"token"`
	ErrorID          string `json:"error_id"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

const statusOK = "OK"

// do sends one API call. Creates (POST) are sent once; other methods are
// retried on transport errors and 5xx responses. An expired session is
// renewed once per call.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*response, error) {
	ctx, span := observability.StartSpan(ctx, "appnexus "+method+" "+path,
		attribute.String("http.method", method),
		attribute.String("appnexus.path", path),
	)
	defer span.End()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	attempts := c.maxAttempts
	if method == http.MethodPost {
		attempts = 1
	}

	var (
		resp     *response
		err      error
		reauthed bool
	)

	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err = c.authorized(ctx, method, path, query, payload)
		if isNoAuth(err) && !reauthed {
			reauthed = true
			c.logger.Debug("session expired, re-authenticating")
			resp, err = c.authorized(ctx, method, path, query, payload)
		}
		if err == nil {
			return resp, nil
		}

		if !retryable(err) || attempt == attempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"method", method,
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			span.RecordError(ctx.Err())
			span.SetStatus(codes.Error, "cancelled")
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, DecodeMessage(err))
	return nil, err
}

// authorized sends the call with the current session token, logging in
// first when there is none. A rejected token is dropped so the next call
// logs in again.
func (c *Client) authorized(ctx context.Context, method, path string, query url.Values, payload []byte) (*response, error) {
	token, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, method, path, query, payload, token)
	if isNoAuth(err) {
		c.invalidate(token)
	}
	return resp, err
}

func (c *Client) session(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	token, err := c.login(ctx)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	c.token = token
	return token, nil
}

func (c *Client) invalidate(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == token {
		c.token = ""
	}
}

func (c *Client) login(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"auth": map[string]string{
			"username": c.username,
			"password": c.password,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal credentials: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, "/auth", nil, payload, "")
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("empty session token")
	}
	return resp.Token, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, token string) (*response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "CampaignSyncer/1.0")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return nil, &Error{StatusCode: httpResp.StatusCode}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK || env.Response.Status != statusOK {
		return nil, &Error{
			StatusCode:  httpResp.StatusCode,
			ID:          env.Response.ErrorID,
			Message:     env.Response.Error,
			Description: env.Response.ErrorDescription,
		}
	}

	return &env.Response, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
