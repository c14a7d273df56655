package infra_analytics

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/humanbelnik/moviehub/internal/model"
)

const defaultEndpoint = "https://www.google-analytics.com/collect"

// Client ships usage events to the Measurement Protocol endpoint.
// Callers treat it as fire-and-forget: an error only matters to the log.
type Client struct {
	trackingID string
	clientID   string
	endpoint   string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

func New(trackingID string, opts ...ClientOption) *Client {
	c := &Client{
		trackingID: trackingID,
		clientID:   uuid.New().String(),
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Report(ctx context.Context, e model.UsageEvent) error {
	form := url.Values{}
	form.Set("v", "1")
	form.Set("tid", c.trackingID)
	form.Set("cid", c.clientID)
	form.Set("t", "event")
	form.Set("ec", e.Category)
	form.Set("ea", e.Action)
	form.Set("el", e.Label)
	form.Set("ev", strconv.Itoa(e.Value))
	form.Set("cd1", e.Dimension)
	form.Set("cm1", strconv.Itoa(e.Metric))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build analytics request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send analytics event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("analytics endpoint returned status: %d", resp.StatusCode)
	}

	return nil
}
