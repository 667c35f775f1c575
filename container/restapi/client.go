// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tankworks/gastank/container/restapi/model"
)

// Client is a Gateway proxy over the HTTP binding. The underlying
// http.Client is constructed once and reused for every call; a Client
// is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client bound to the server at baseURL
// (scheme://host:port, no version prefix).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL + version20260110,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// IncreaseMass requests a mass increase. A request the engine declines
// is still a nil-error call.
func (c *Client) IncreaseMass(ctx context.Context, amount float64) error {
	return c.postMass(ctx, "/container/mass/increase", amount)
}

// DecreaseMass requests a mass decrease.
func (c *Client) DecreaseMass(ctx context.Context, amount float64) error {
	return c.postMass(ctx, "/container/mass/decrease", amount)
}

// GetPressure reads the derived container pressure.
func (c *Client) GetPressure(ctx context.Context) (float64, error) {
	var resp model.PressureResponse
	if err := c.get(ctx, "/container/pressure", &resp); err != nil {
		return 0, err
	}
	return resp.Pressure, nil
}

// IsDestroyed reads the destroyed flag.
func (c *Client) IsDestroyed(ctx context.Context) (bool, error) {
	var resp model.DestroyedResponse
	if err := c.get(ctx, "/container/destroyed", &resp); err != nil {
		return false, err
	}
	return resp.Destroyed, nil
}

func (c *Client) postMass(ctx context.Context, endpoint string, amount float64) error {
	body, err := json.Marshal(&model.MassRequest{Amount: amount})
	if err != nil {
		return fmt.Errorf("marshal mass request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("post %s: unexpected status %d", endpoint, resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
