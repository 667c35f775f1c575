// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rpcapi

import (
	"context"
	"errors"
	"fmt"
	"net/rpc"
	"sync"
)

// Client is a Gateway proxy over one persistent rpc connection. The
// connection is dialed lazily and reused for every call; a connection
// that shuts down is dropped so the next call redials instead of
// failing forever. A Client is safe for concurrent use.
type Client struct {
	addr string

	mu  sync.Mutex
	rpc *rpc.Client
}

// NewClient returns a Client for the rpc server at addr (host:port)
// without connecting yet.
func NewClient(addr string) *Client {
	return &Client{addr: addr}
}

// Dial returns a Client with an established connection to addr.
func Dial(addr string) (*Client, error) {
	c := NewClient(addr)
	if _, err := c.conn(); err != nil {
		return nil, err
	}
	return c, nil
}

// IncreaseMass requests a mass increase. A request the engine declines
// is still a nil-error call.
func (c *Client) IncreaseMass(ctx context.Context, amount float64) error {
	return c.call(ctx, ServiceName+".IncreaseMass", &MassArgs{Amount: amount}, &Ack{})
}

// DecreaseMass requests a mass decrease.
func (c *Client) DecreaseMass(ctx context.Context, amount float64) error {
	return c.call(ctx, ServiceName+".DecreaseMass", &MassArgs{Amount: amount}, &Ack{})
}

// GetPressure reads the derived container pressure.
func (c *Client) GetPressure(ctx context.Context) (float64, error) {
	var reply PressureReply
	if err := c.call(ctx, ServiceName+".GetPressure", &struct{}{}, &reply); err != nil {
		return 0, err
	}
	return reply.Pressure, nil
}

// IsDestroyed reads the destroyed flag.
func (c *Client) IsDestroyed(ctx context.Context) (bool, error) {
	var reply DestroyedReply
	if err := c.call(ctx, ServiceName+".IsDestroyed", &struct{}{}, &reply); err != nil {
		return false, err
	}
	return reply.Destroyed, nil
}

// Close tears down the underlying connection, if any.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rpc == nil {
		return nil
	}
	err := c.rpc.Close()
	c.rpc = nil
	return err
}

func (c *Client) conn() (*rpc.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rpc != nil {
		return c.rpc, nil
	}
	conn, err := rpc.Dial("tcp", c.addr)
	if err != nil {
		return nil, fmt.Errorf("dial container rpc %s: %w", c.addr, err)
	}
	c.rpc = conn
	return conn, nil
}

// drop discards conn so the next call redials, unless a concurrent
// call already replaced it.
func (c *Client) drop(conn *rpc.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rpc == conn {
		c.rpc.Close()
		c.rpc = nil
	}
}

// call issues one synchronous round trip, honoring ctx cancellation.
// The rpc call itself is not torn down on cancellation; its result is
// discarded.
func (c *Client) call(ctx context.Context, method string, args, reply interface{}) error {
	conn, err := c.conn()
	if err != nil {
		return err
	}

	call := conn.Go(method, args, reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case done := <-call.Done:
		if done.Error != nil {
			if errors.Is(done.Error, rpc.ErrShutdown) {
				c.drop(conn)
			}
			return fmt.Errorf("call %s: %w", method, done.Error)
		}
		return nil
	}
}
