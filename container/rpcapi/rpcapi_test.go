// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rpcapi

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tankworks/gastank/container/core"
	"github.com/tankworks/gastank/container/gateway"
)

func startServer(t *testing.T) (*Server, *core.Engine) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	engine := core.NewEngine(core.DefaultConfig(), log)

	srv := NewServer("127.0.0.1", 0, gateway.NewLocal(engine), log)
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go srv.Serve(ctx)
	t.Cleanup(func() { srv.Close() })

	return srv, engine
}

func TestRPCRoundTrip(t *testing.T) {
	srv, engine := startServer(t)

	client, err := Dial(srv.Addr())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	pressure, err := client.GetPressure(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 130.8036, pressure, 0.0001)

	destroyed, err := client.IsDestroyed(ctx)
	require.NoError(t, err)
	assert.False(t, destroyed)

	require.NoError(t, client.DecreaseMass(ctx, 0.5))
	assert.InDelta(t, 9.5*293/22.4, engine.GetPressure(), 0.0001)

	// pressure is still at or above the increase limit: the engine
	// declines but the rpc call succeeds
	require.NoError(t, client.IncreaseMass(ctx, 1000))
	assert.InDelta(t, 9.5*293/22.4, engine.GetPressure(), 0.0001)
}

func TestDialFailure(t *testing.T) {
	_, err := Dial("127.0.0.1:1")
	assert.Error(t, err)
}
