// Package sheets reads orders from a published spreadsheet CSV export.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/model"
)

const maxBody = 10 << 20

var ErrExportTooLarge = errors.New("sheet export too large")

type Client struct {
	csvURL  string
	sheetID string
	gid     string
	client  *http.Client
	now     func() time.Time
	limit   int64
}

// NewClient prefers publishedURL; otherwise it builds a gviz CSV export URL
// from sheetID and gid. With neither configured the client is disabled.
func NewClient(publishedURL, sheetID, gid string) *Client {
	if gid == "" {
		gid = "0"
	}
	return &Client{
		csvURL:  publishedURL,
		sheetID: sheetID,
		gid:     gid,
		client:  &http.Client{Timeout: 15 * time.Second},
		now:     time.Now,
		limit:   maxBody,
	}
}

func (c *Client) Enabled() bool {
	return c.sourceURL() != ""
}

func (c *Client) sourceURL() string {
	if c.csvURL != "" {
		return c.csvURL
	}
	if c.sheetID != "" {
		return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&gid=%s",
			url.PathEscape(c.sheetID), url.QueryEscape(c.gid))
	}
	return ""
}

// requestURL appends a cache-busting parameter so stale exports are not served.
func (c *Client) requestURL() string {
	u := c.sourceURL()
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "r=" + strconv.FormatInt(c.now().UnixMilli(), 10)
}

// FetchOrders downloads and parses the sheet. Every failure is logged and
// reported as no data.
func (c *Client) FetchOrders(ctx context.Context) []model.Order {
	if !c.Enabled() {
		return []model.Order{}
	}

	text, err := c.fetch(ctx)
	if err != nil {
		slog.Error("failed to fetch orders from sheet", "error", err)
		return []model.Order{}
	}
	return ParseOrders(text)
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.limit+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > c.limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrExportTooLarge, c.limit)
	}
	return string(body), nil
}
