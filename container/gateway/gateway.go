// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package gateway defines the canonical four-operation contract every
// protocol front end binds to and every remote client proxy implements.
package gateway

import "context"

// Gateway is the protocol-agnostic container contract. Front ends
// translate wire requests into these calls without adding business
// logic; threshold checks stay in the engine, retries stay in the
// caller.
//
// The error slot exists for remote bindings only: it carries transport
// failures, never engine decisions. A mutation rejected by the engine's
// admission control is a successful call with unchanged state, and
// implementations must not turn it into an error.
type Gateway interface {
	IncreaseMass(ctx context.Context, amount float64) error
	DecreaseMass(ctx context.Context, amount float64) error
	GetPressure(ctx context.Context) (float64, error)
	IsDestroyed(ctx context.Context) (bool, error)
}

// Engine is the in-process surface of the container state engine, as
// implemented by core.Engine. Operations are synchronous, never fail,
// and hold no lock across calls.
type Engine interface {
	IncreaseMass(amount float64)
	DecreaseMass(amount float64)
	GetPressure() float64
	IsDestroyed() bool
}

// Local adapts an Engine to the Gateway contract for in-process
// callers. It never returns an error.
type Local struct {
	engine Engine
}

// NewLocal returns a Gateway backed directly by engine.
func NewLocal(engine Engine) *Local {
	return &Local{engine: engine}
}

func (l *Local) IncreaseMass(_ context.Context, amount float64) error {
	l.engine.IncreaseMass(amount)
	return nil
}

func (l *Local) DecreaseMass(_ context.Context, amount float64) error {
	l.engine.DecreaseMass(amount)
	return nil
}

func (l *Local) GetPressure(_ context.Context) (float64, error) {
	return l.engine.GetPressure(), nil
}

func (l *Local) IsDestroyed(_ context.Context) (bool, error) {
	return l.engine.IsDestroyed(), nil
}
