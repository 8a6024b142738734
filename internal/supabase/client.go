// Package supabase is a minimal client for the Supabase REST API, used to
// check that the configured project is reachable
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"labelsmobile/internal/httpclient"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
)

var (
	ErrInvalidConfig = errors.New("invalid supabase config")
	ErrUnauthorized  = errors.New("supabase rejected the anon key")
	ErrTableNotFound = errors.New("table not found")
)

const (
	restPath       = "/rest/v1"
	defaultTimeout = 15 * time.Second
)

type ClientConfig struct {
	URL     string `validate:"required,url"`
	AnonKey string `validate:"required"`
	Timeout time.Duration
}

type Client struct {
	client *resty.Client
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")+restPath).
		SetTimeout(cfg.Timeout).
		SetTransport(&httpclient.ClientInfoTransport{}).
		SetHeader("apikey", cfg.AnonKey).
		SetAuthToken(cfg.AnonKey)

	return &Client{client: cli}, nil
}

// CountRecords returns the number of rows in table. The exact total from the
// Content-Range header is preferred over the number of rows returned, which
// the server may cap.
func (c *Client) CountRecords(ctx context.Context, table string) (int, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "count=exact").
		SetQueryParam("select", "*").
		Get(table)
	if err != nil {
		return 0, fmt.Errorf("select %s: %w", table, err)
	}
	if err := mapHTTPError(resp, table); err != nil {
		return 0, err
	}

	if total, ok := parseContentRangeTotal(resp.Header().Get("Content-Range")); ok {
		return total, nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return 0, fmt.Errorf("failed to decode %s rows: %w", table, err)
	}
	return len(rows), nil
}

// TableExists reports whether table is exposed by the REST API.
func (c *Client) TableExists(ctx context.Context, table string) (bool, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("select", "count").
		SetQueryParam("limit", "1").
		Get(table)
	if err != nil {
		return false, fmt.Errorf("select %s: %w", table, err)
	}

	err = mapHTTPError(resp, table)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrTableNotFound):
		return false, nil
	default:
		return false, err
	}
}

func mapHTTPError(resp *resty.Response, table string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrTableNotFound, table)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// parseContentRangeTotal reads the total from "0-24/3573" or "*/0".
func parseContentRangeTotal(header string) (int, bool) {
	_, total, ok := strings.Cut(header, "/")
	if !ok || total == "*" {
		return 0, false
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, false
	}
	return n, true
}
