// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package grpcapi

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/tankworks/gastank/container/core"
	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/grpcapi/containerpb"
)

func startBufconnService(t *testing.T) (*Client, *core.Engine) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	engine := core.NewEngine(core.DefaultConfig(), log)

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	containerpb.RegisterContainerServer(server, NewService(gateway.NewLocal(engine), log))
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewClientFromConn(conn), engine
}

func TestGRPCRoundTrip(t *testing.T) {
	client, engine := startBufconnService(t)
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
	// declines but the rpc succeeds with unchanged state
	require.NoError(t, client.IncreaseMass(ctx, 1000))
	assert.InDelta(t, 9.5*293/22.4, engine.GetPressure(), 0.0001)
}
