// Package postgrest implements backend.Client over a hosted PostgREST
// endpoint such as Supabase's /rest/v1 API.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/portfolio/internal/backend"
	"github.com/louisbranch/portfolio/internal/platform/timeouts"
)

const (
	restPath         = "/rest/v1/"
	singleObjectType = "application/vnd.pgrst.object+json"
	maxErrorBody     = 64 << 10
)

// Config configures the REST client.
type Config struct {
	// BaseURL is the project URL, e.g. https://xyz.supabase.co.
	BaseURL string
	// APIKey is sent as both the apikey header and the bearer token.
	APIKey string
	// Timeout bounds each request; zero uses timeouts.BackendRequest.
	Timeout time.Duration
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to one PostgREST endpoint.
type Client struct {
	base   *url.URL
	apiKey string
	http   *http.Client
}

var _ backend.Client = (*Client)(nil)

// New validates cfg and builds a client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("postgrest: base url is required")
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("postgrest: parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("postgrest: base url must be http or https, got %q", base.Scheme)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("postgrest: api key is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = timeouts.BackendRequest
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{base: base, apiKey: strings.TrimSpace(cfg.APIKey), http: httpClient}, nil
}

// Select implements backend.Client.
func (c *Client) Select(ctx context.Context, q backend.Query, dest any) (backend.Result, error) {
	if err := q.Validate(); err != nil {
		return backend.Result{}, err
	}

	method := http.MethodGet
	if q.HeadOnly {
		method = http.MethodHead
	}
	req, err := http.NewRequestWithContext(ctx, method, c.tableURL(q.Table, EncodeQuery(q)), nil)
	if err != nil {
		return backend.Result{}, fmt.Errorf("postgrest: build request: %w", err)
	}
	c.authorize(req)
	if q.Counted {
		req.Header.Set("Prefer", "count=exact")
	}
	if q.SingleRow {
		req.Header.Set("Accept", singleObjectType)
	} else {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return backend.Result{}, fmt.Errorf("postgrest: select %s: %w", q.Table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		apiErr := decodeError(resp)
		if q.SingleRow && resp.StatusCode == http.StatusNotAcceptable {
			return backend.Result{}, singleRowError(apiErr)
		}
		return backend.Result{}, apiErr
	}

	res := backend.Result{}
	if q.Counted {
		count, ok := ParseContentRange(resp.Header.Get("Content-Range"))
		res = backend.Result{Count: count, Counted: ok}
	}
	if q.HeadOnly || dest == nil {
		return res, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return backend.Result{}, fmt.Errorf("postgrest: decode %s: %w", q.Table, err)
	}
	return res, nil
}

// Insert implements backend.Client.
func (c *Client) Insert(ctx context.Context, table string, row any) error {
	if err := backend.ValidateIdentifier(table); err != nil {
		return err
	}
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("postgrest: encode row: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table, ""), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("postgrest: build request: %w", err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("postgrest: insert %s: %w", table, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusNoContent, http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	default:
		return decodeError(resp)
	}
}

func (c *Client) tableURL(table, rawQuery string) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + restPath + table
	u.RawQuery = rawQuery
	return u.String()
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// EncodeQuery renders q in PostgREST's query-string grammar.
func EncodeQuery(q backend.Query) string {
	params := url.Values{}
	params.Set("select", q.SelectList())
	for _, filter := range q.Filters {
		params.Add(filter.Column, "eq."+backend.FormatValue(filter.Value))
	}
	if len(q.Orders) > 0 {
		parts := make([]string, 0, len(q.Orders))
		for _, order := range q.Orders {
			dir := "desc"
			if order.Ascending {
				dir = "asc"
			}
			parts = append(parts, order.Column+"."+dir)
		}
		params.Set("order", strings.Join(parts, ","))
	}
	if q.Max > 0 {
		params.Set("limit", strconv.Itoa(q.Max))
	}
	return params.Encode()
}

// ParseContentRange extracts the total from a "0-9/42" or "*/0" header.
// The bool is false when the total is missing or unknown.
func ParseContentRange(header string) (int, bool) {
	_, total, found := strings.Cut(strings.TrimSpace(header), "/")
	if !found || total == "*" {
		return 0, false
	}
	n, err := strconv.Atoi(total)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func decodeError(resp *http.Response) *backend.Error {
	apiErr := &backend.Error{Status: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if len(bytes.TrimSpace(body)) == 0 {
		return apiErr
	}
	if err := json.Unmarshal(body, apiErr); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	apiErr.Status = resp.StatusCode
	return apiErr
}

func singleRowError(apiErr *backend.Error) error {
	if strings.Contains(apiErr.Details, "0 rows") {
		return fmt.Errorf("%w: %s", backend.ErrNoRows, apiErr.Details)
	}
	return fmt.Errorf("%w: %s", backend.ErrMultipleRows, apiErr.Details)
}
