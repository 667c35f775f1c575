// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tankworks/gastank/container/core"
)

func TestLocalForwardsToEngine(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	engine := core.NewEngine(core.DefaultConfig(), log)
	local := NewLocal(engine)
	ctx := context.Background()

	pressure, err := local.GetPressure(ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.GetPressure(), pressure)

	destroyed, err := local.IsDestroyed(ctx)
	require.NoError(t, err)
	assert.False(t, destroyed)

	// stock pressure sits above the upper pressure limit, so the
	// decrease gate is open and the increase gate is closed
	require.NoError(t, local.DecreaseMass(ctx, 0.5))
	after, err := local.GetPressure(ctx)
	require.NoError(t, err)
	assert.Less(t, after, pressure)

	// a rejected mutation is still a nil-error call
	require.NoError(t, local.IncreaseMass(ctx, 1000))
	unchanged, err := local.GetPressure(ctx)
	require.NoError(t, err)
	assert.Equal(t, after, unchanged)
}
