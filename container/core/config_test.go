// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GASTANK_PRESSURE_LIMIT", "90")
	t.Setenv("GASTANK_TICK_INTERVAL", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.PressureLimit)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 125.0, cfg.UpperPressureLimit)
}

func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	t.Setenv("GASTANK_EXPLOSION_LIMIT", "very high")

	_, err := LoadConfig()
	assert.Error(t, err)
}
