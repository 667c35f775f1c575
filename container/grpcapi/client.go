// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package grpcapi

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tankworks/gastank/container/grpcapi/containerpb"
)

// Client is a Gateway proxy over one long-lived gRPC connection. The
// connection is created once and reused for every call; a Client is
// safe for concurrent use.
type Client struct {
	conn *grpc.ClientConn
	api  containerpb.ContainerClient
}

// Dial connects to the gRPC server at addr (host:port).
func Dial(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial container grpc %s: %w", addr, err)
	}
	return &Client{conn: conn, api: containerpb.NewContainerClient(conn)}, nil
}

// NewClientFromConn wraps an existing connection; the caller keeps
// ownership of conn.
func NewClientFromConn(conn *grpc.ClientConn) *Client {
	return &Client{api: containerpb.NewContainerClient(conn)}
}

// IncreaseMass requests a mass increase. A request the engine declines
// is still a nil-error call.
func (c *Client) IncreaseMass(ctx context.Context, amount float64) error {
	if _, err := c.api.IncreaseMass(ctx, &containerpb.MassRequest{Amount: amount}); err != nil {
		return fmt.Errorf("increase mass: %w", err)
	}
	return nil
}

// DecreaseMass requests a mass decrease.
func (c *Client) DecreaseMass(ctx context.Context, amount float64) error {
	if _, err := c.api.DecreaseMass(ctx, &containerpb.MassRequest{Amount: amount}); err != nil {
		return fmt.Errorf("decrease mass: %w", err)
	}
	return nil
}

// GetPressure reads the derived container pressure.
func (c *Client) GetPressure(ctx context.Context) (float64, error) {
	resp, err := c.api.GetPressure(ctx, &containerpb.PressureRequest{})
	if err != nil {
		return 0, fmt.Errorf("get pressure: %w", err)
	}
	return resp.GetPressure(), nil
}

// IsDestroyed reads the destroyed flag.
func (c *Client) IsDestroyed(ctx context.Context) (bool, error) {
	resp, err := c.api.IsDestroyed(ctx, &containerpb.DestroyedRequest{})
	if err != nil {
		return false, fmt.Errorf("is destroyed: %w", err)
	}
	return resp.GetDestroyed(), nil
}

// Close tears down the underlying connection, when owned.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
