package supabase

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/domain"
)

const defaultTimeout = 10 * time.Second

// Client speaks the store's filtered-REST dialect: filters are encoded as
// column=operator.value query pairs and writes return the affected rows as
// a list. It exposes a closed set of four intents; there is no generic
// method dispatch. No call is ever retried: a failed request surfaces
// immediately to the caller.
type Client struct {
	baseURL string
	apiKey  string
	http    *fasthttp.Client
	logger  *zap.Logger
}

// NewClient builds a gateway client for the record store.
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &fasthttp.Client{Name: "prime-trade-gateway"},
		logger:  logger,
	}
}

// Query accumulates filter terms for a single request.
type Query struct {
	params url.Values
}

func NewQuery() Query {
	return Query{params: url.Values{}}
}

// Eq adds an equality filter term.
func (q Query) Eq(column, value string) Query {
	q.params.Set(column, "eq."+value)
	return q
}

// ILike adds a case-insensitive substring match on column.
func (q Query) ILike(column, term string) Query {
	q.params.Set(column, "ilike.%"+term+"%")
	return q
}

// OrderDesc adds a newest-first ordering directive on column.
func (q Query) OrderDesc(column string) Query {
	q.params.Set("order", column+".desc")
	return q
}

// Encode renders the terms as a canonical query string.
func (q Query) Encode() string {
	if q.params == nil {
		return ""
	}
	return q.params.Encode()
}

// Select reads rows matching the query into out (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, q Query, out interface{}) error {
	body, err := c.do(ctx, fasthttp.MethodGet, table, q, nil)
	if err != nil {
		return err
	}
	return c.decode(table, body, out)
}

// Insert creates a record and reads the returned row list into out.
func (c *Client) Insert(ctx context.Context, table string, record, out interface{}) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "internal error", err)
	}
	body, err := c.do(ctx, fasthttp.MethodPost, table, NewQuery(), payload)
	if err != nil {
		return err
	}
	return c.decode(table, body, out)
}

// Update patches rows matching the query and reads the updated rows into out.
// An empty row list means the filter matched nothing; callers decide whether
// that is a miss or a no-op.
func (c *Client) Update(ctx context.Context, table string, q Query, patch, out interface{}) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "internal error", err)
	}
	body, err := c.do(ctx, fasthttp.MethodPatch, table, q, payload)
	if err != nil {
		return err
	}
	return c.decode(table, body, out)
}

// Delete removes rows matching the query. Matching nothing is not an error.
func (c *Client) Delete(ctx context.Context, table string, q Query) error {
	_, err := c.do(ctx, fasthttp.MethodDelete, table, q, nil)
	return err
}

// Ping probes store reachability for the health monitor.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, fasthttp.MethodGet, "", NewQuery(), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, table string, q Query, payload []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	uri := c.baseURL + "/rest/v1/" + table
	if encoded := q.Encode(); encoded != "" {
		uri += "?" + encoded
	}
	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.SetContentType("application/json")
	if method == fasthttp.MethodPost || method == fasthttp.MethodPatch {
		req.Header.Set("Prefer", "return=representation")
		req.SetBody(payload)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultTimeout)
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Error("store request failed",
			zap.String("method", method),
			zap.String("table", table),
			zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeUpstream, "record store unavailable", err)
	}

	status := resp.StatusCode()
	if status >= fasthttp.StatusBadRequest {
		// Upstream bodies are logged, never returned to the caller.
		c.logger.Error("store request rejected",
			zap.String("method", method),
			zap.String("table", table),
			zap.Int("status", status),
			zap.ByteString("body", resp.Body()))
		return nil, domain.NewError(domain.ErrCodeUpstream, "record store error")
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

func (c *Client) decode(table string, body []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	if len(body) == 0 {
		return domain.NewError(domain.ErrCodeUpstream, "record store error")
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("store response malformed",
			zap.String("table", table),
			zap.Error(err))
		return domain.WrapError(domain.ErrCodeUpstream, "record store error", err)
	}
	return nil
}
