package recordstore

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
	"strconv"
	"strings"

	"lounge-engine/internal/pkg/config"
	"lounge-engine/internal/pkg/errs"
)

// Client talks to the remote record store's collection API. The store is the
// only durable state this service has; there is no local database. The store
// guarantees atomicity per record only; anything spanning two collections is
// the caller's saga problem.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	maxPerPage int
	logger     *slog.Logger
}

func NewClient(cfg config.RecordStoreConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authToken:  cfg.AuthToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxPerPage: cfg.MaxPerPage,
		logger:     logger,
	}
}

// NewClientWithHTTP is for tests that point the client at a stub server.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		maxPerPage: 200,
		logger:     logger,
	}
}

type ListOptions struct {
	Filter Filter
	Sort   string
	Expand string
}

type ListResult struct {
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalItems int             `json:"totalItems"`
	Items      json.RawMessage `json:"items"`
}

// APIError is a structured failure from the store. Status 0 means the call
// never reached the store.
type APIError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return "record store unreachable: " + e.Message
	}
	return fmt.Sprintf("record store: %d %s", e.Status, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUniqueViolation detects the store's not-unique validation failure, the
// signal behind the conditional-create booking guard.
func IsUniqueViolation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		return false
	}
	for _, v := range apiErr.Data {
		if fieldErr, ok := v.(map[string]any); ok {
			if code, ok := fieldErr["code"].(string); ok && strings.Contains(code, "not_unique") {
				return true
			}
		}
	}
	return false
}

// UniqueViolationField names the field whose unique index rejected a write,
// or "" when the error is not a unique violation.
func UniqueViolationField(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		return ""
	}
	for field, v := range apiErr.Data {
		if fieldErr, ok := v.(map[string]any); ok {
			if code, ok := fieldErr["code"].(string); ok && strings.Contains(code, "not_unique") {
				return field
			}
		}
	}
	return ""
}

func IsUnavailable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 0 || apiErr.Status >= http.StatusInternalServerError
	}
	return false
}

func (c *Client) Create(ctx context.Context, collection string, fields, out any) error {
	return c.do(ctx, http.MethodPost, c.recordsPath(collection), nil, fields, out)
}

func (c *Client) Update(ctx context.Context, collection, id string, fields, out any) error {
	return c.do(ctx, http.MethodPatch, c.recordPath(collection, id), nil, fields, out)
}

func (c *Client) GetOne(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, c.recordPath(collection, id), nil, nil, out)
}

func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, c.recordPath(collection, id), nil, nil, nil)
}

// GetList fetches one page and unmarshals the items into out (a pointer to a
// slice). Returns the store-reported total across all pages.
func (c *Client) GetList(ctx context.Context, collection string, page, perPage int, opts ListOptions, out any) (int, error) {
	if perPage <= 0 || perPage > c.maxPerPage {
		perPage = c.maxPerPage
	}
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("perPage", strconv.Itoa(perPage))
	if opts.Filter != nil {
		q.Set("filter", Compile(opts.Filter))
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Expand != "" {
		q.Set("expand", opts.Expand)
	}

	var result ListResult
	if err := c.do(ctx, http.MethodGet, c.recordsPath(collection), q, nil, &result); err != nil {
		return 0, err
	}
	if out != nil && len(result.Items) > 0 {
		if err := json.Unmarshal(result.Items, out); err != nil {
			return 0, errs.Wrap(err, "decoding list items")
		}
	}
	return result.TotalItems, nil
}

// GetFirstListItem returns the first record matching filter, or a 404-shaped
// APIError when nothing matches.
func (c *Client) GetFirstListItem(ctx context.Context, collection string, filter Filter, out any) error {
	raw := []json.RawMessage{}
	total, err := c.GetList(ctx, collection, 1, 1, ListOptions{Filter: filter}, &raw)
	if err != nil {
		return err
	}
	if total == 0 || len(raw) == 0 {
		return &APIError{Status: http.StatusNotFound, Message: "no record matched the filter"}
	}
	return json.Unmarshal(raw[0], out)
}

func (c *Client) recordsPath(collection string) string {
	return "/api/collections/" + url.PathEscape(collection) + "/records"
}

func (c *Client) recordPath(collection, id string) string {
	return c.recordsPath(collection) + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errs.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("record store call failed", "method", method, "path", path, "error", err)
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			c.logger.Debug("undecodable store error body", "status", resp.StatusCode, "error", decodeErr)
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decoding response body")
	}
	return nil
}
