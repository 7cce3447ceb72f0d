package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/common"
	"github.com/dmitrijs2005/codeshack/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single request when Options.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// TokenProvider yields the bearer token for the next request. An empty
// token means the request is sent anonymously.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Tokens     TokenProvider
	Logger     logging.Logger

	// RateLimit is the maximum number of requests per second; 0 disables it.
	RateLimit float64

	// Dedup shares one response between identical GET requests in flight.
	// It only helps callers that issue requests concurrently; the REPL runs
	// one command at a time and gains nothing from it.
	Dedup bool
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	log        logging.Logger
	limiter    *rate.Limiter
	dedup      bool
	group      singleflight.Group
}

// Envelope is the response wrapper shared by every endpoint.
type Envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Token      string             `json:"token,omitempty"`
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: hc,
		tokens:     opts.Tokens,
		log:        log,
		dedup:      opts.Dedup,
	}
	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c
}

// BaseURL returns the configured API origin without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends one request and returns the decoded envelope. method defaults to
// GET; body, when non-nil, is sent as JSON. path may carry a query string.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Envelope, error) {
	if method == "" {
		method = http.MethodGet
	}
	if c.dedup && method == http.MethodGet && body == nil {
		// The shared call outlives any single caller; each caller still
		// stops waiting when its own ctx is done.
		ch := c.group.DoChan(method+" "+path, func() (any, error) {
			return c.do(context.WithoutCancel(ctx), method, path, nil)
		})
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-ch:
			if res.Err != nil {
				return nil, res.Err
			}
			if res.Shared {
				c.log.Debug(ctx, "shared in-flight response", "path", path)
			}
			return res.Val.(*Envelope), nil
		}
	}
	return c.do(ctx, method, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Envelope, error) {
	var token string
	if c.tokens != nil {
		t, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		token = t
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.ContentTypeHeaderName, "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn(ctx, "read response failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, &NetworkError{Err: err}
	}
	c.log.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	var env Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = FallbackMessage
		}
		c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return nil, &RequestError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode %s %s response: %w", method, path, decodeErr)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = FallbackMessage
		}
		return nil, &RequestError{Status: resp.StatusCode, Message: msg}
	}
	return &env, nil
}

func decodeData[T any](env *Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("decode data: %w", err)
	}
	return out, nil
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	env, err := c.Do(ctx, method, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeData[T](env)
}

func send(ctx context.Context, c *Client, method, path string, body any) error {
	_, err := c.Do(ctx, method, path, body)
	return err
}

func list[T any](ctx context.Context, c *Client, path string, page, limit int, extra url.Values) (models.Page[T], error) {
	env, err := c.Do(ctx, http.MethodGet, path+pageQuery(page, limit, extra), nil)
	if err != nil {
		return models.Page[T]{}, err
	}
	items, err := decodeData[[]T](env)
	if err != nil {
		return models.Page[T]{}, err
	}
	p := models.Page[T]{Items: items}
	if env.Pagination != nil {
		p.Pagination = *env.Pagination
	}
	if p.Pagination.Page == 0 {
		p.Pagination.Page = page
	}
	if p.Pagination.Limit == 0 {
		p.Pagination.Limit = limit
	}
	return p, nil
}

func pageQuery(page, limit int, extra url.Values) string {
	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func seg(id string) string {
	return url.PathEscape(id)
}
