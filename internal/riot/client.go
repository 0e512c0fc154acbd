package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"league-tracker/internal/config"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// BaseURLFunc builds the scheme+host part of an upstream URL for a routing
// shard ("americas", "na1", ...). Injectable so tests can point the client at
// a stub server.
type BaseURLFunc func(shard string) string

func defaultBaseURL(shard string) string {
	return fmt.Sprintf("https://%s.api.riotgames.com", shard)
}

type Client struct {
	apiKey  string
	http    *fasthttp.Client
	baseURL BaseURLFunc
	logger  zerolog.Logger

	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo is the latest per-key quota snapshot reported by Riot's
// X-App-Rate-Limit headers. Informational only; the client never retries.
type RateLimitInfo struct {
	AppLimit   string    `json:"app_limit"`
	AppCount   string    `json:"app_count"`
	RetryAfter int       `json:"retry_after"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Option func(*Client)

func WithBaseURL(base BaseURLFunc) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

func NewClient(cfg *config.Config, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey: cfg.RiotAPIKey,
		http: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		baseURL: defaultBaseURL,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) RateLimit() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.AppLimit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.AppCount = count
	}
	c.rateLimit.RetryAfter = 0
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.RetryAfter = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// riotStatus is the error envelope Riot wraps non-2xx responses in.
type riotStatus struct {
	Status struct {
		Message    string `json:"message"`
		StatusCode int    `json:"status_code"`
	} `json:"status"`
}

// doRequest performs one authenticated GET. One-shot: no retry, no backoff.
// Non-2xx responses come back as *APIError carrying the upstream status code;
// composition above decides whether another candidate shard is worth trying.
func doRequest[T any](ctx context.Context, client *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.http.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("riot request failed: %w", err)
		}
	} else {
		if err := client.http.Do(req, resp); err != nil {
			return nil, fmt.Errorf("riot request failed: %w", err)
		}
	}

	client.updateRateLimit(resp)

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		apiErr := &APIError{StatusCode: status}
		var body riotStatus
		if err := json.Unmarshal(resp.Body(), &body); err == nil {
			apiErr.Message = body.Status.Message
		}
		return nil, apiErr
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode riot response: %w", err)
	}
	return &result, nil
}
