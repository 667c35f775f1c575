// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package restapi

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tankworks/gastank/container/core"
	"github.com/tankworks/gastank/container/gateway"
)

func TestServerClientRoundTrip(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	engine := core.NewEngine(core.DefaultConfig(), log)

	srv := NewServer("127.0.0.1", 0, gateway.NewLocal(engine), log)
	require.NoError(t, srv.Listen())
	require.True(t, srv.IsListening())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx)
	defer srv.Close()

	client := NewClient(fmt.Sprintf("http://127.0.0.1:%d", srv.Port()))

	pressure, err := client.GetPressure(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 130.8036, pressure, 0.0001)

	destroyed, err := client.IsDestroyed(ctx)
	require.NoError(t, err)
	assert.False(t, destroyed)

	// stock pressure is above the upper limit, so the decrease applies
	require.NoError(t, client.DecreaseMass(ctx, 0.5))
	vented, err := client.GetPressure(ctx)
	require.NoError(t, err)
	assert.Less(t, vented, pressure)

	// pressure still at or above the increase limit: the engine declines,
	// the wire call stays a success and state stays put
	require.NoError(t, client.IncreaseMass(ctx, 1000))
	unchanged, err := client.GetPressure(ctx)
	require.NoError(t, err)
	assert.Equal(t, vented, unchanged)
}

func TestClientTransportFailure(t *testing.T) {
	// nothing listens here
	client := NewClient("http://127.0.0.1:1")

	_, err := client.GetPressure(context.Background())
	assert.Error(t, err)

	assert.Error(t, client.IncreaseMass(context.Background(), 1))
}
