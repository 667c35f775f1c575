// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package peer

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedGateway struct {
	mu        sync.Mutex
	pressure  float64
	destroyed bool
	err       error
	increased []float64
	decreased []float64
}

func (s *scriptedGateway) IncreaseMass(_ context.Context, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.increased = append(s.increased, amount)
	return nil
}

func (s *scriptedGateway) DecreaseMass(_ context.Context, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.decreased = append(s.decreased, amount)
	return nil
}

func (s *scriptedGateway) GetPressure(_ context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pressure, s.err
}

func (s *scriptedGateway) IsDestroyed(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed, s.err
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig() Config {
	return Config{PollInterval: 1, Amount: 5, Threshold: 110}
}

func TestFeederAddsMassBelowThreshold(t *testing.T) {
	gw := &scriptedGateway{pressure: 50}
	feeder := NewFeeder(gw, testConfig(), testLogger())

	require.NoError(t, feeder.step(context.Background()))
	assert.Equal(t, []float64{5}, gw.increased)
}

func TestFeederIdleAboveThreshold(t *testing.T) {
	gw := &scriptedGateway{pressure: 130}
	feeder := NewFeeder(gw, testConfig(), testLogger())

	require.NoError(t, feeder.step(context.Background()))
	assert.Empty(t, gw.increased)
}

func TestFeederIdleWhileDestroyed(t *testing.T) {
	gw := &scriptedGateway{pressure: 50, destroyed: true}
	feeder := NewFeeder(gw, testConfig(), testLogger())

	require.NoError(t, feeder.step(context.Background()))
	assert.Empty(t, gw.increased)
}

func TestVenterRemovesMassAboveThreshold(t *testing.T) {
	cfg := Config{PollInterval: 1, Amount: 2, Threshold: 125}
	gw := &scriptedGateway{pressure: 130.8}
	venter := NewVenter(gw, cfg, testLogger())

	require.NoError(t, venter.step(context.Background()))
	assert.Equal(t, []float64{2}, gw.decreased)
}

func TestStepSurfacesTransportErrors(t *testing.T) {
	gw := &scriptedGateway{err: errors.New("connection refused")}
	feeder := NewFeeder(gw, testConfig(), testLogger())

	assert.Error(t, feeder.step(context.Background()))
}

func TestRunStopsOnCancel(t *testing.T) {
	gw := &scriptedGateway{pressure: 50}
	feeder := NewFeeder(gw, testConfig(), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- feeder.Run(ctx) }()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
