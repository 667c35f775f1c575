// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewEngine(DefaultConfig(), log)
}

func TestInitialState(t *testing.T) {
	engine := newTestEngine()
	assert.False(t, engine.IsDestroyed())
	// 10 * 293 / 22.4; the stock state already sits above the upper
	// pressure limit, which is the inherited starting condition.
	assert.InDelta(t, 130.8036, engine.GetPressure(), 0.0001)
	assert.Equal(t, InitialMass*InitialTemperature/molarVolume, engine.GetPressure())
}

func TestIncreaseMassBelowLimit(t *testing.T) {
	engine := newTestEngine()
	// mass=10, temperature=112 => pressure=50, below the limit of 110
	engine.temperature = 112
	require.Equal(t, 50.0, engine.GetPressure())

	engine.IncreaseMass(5)
	assert.Equal(t, 15.0, engine.mass)
	assert.Equal(t, engine.mass*engine.temperature/molarVolume, engine.GetPressure())
}

func TestIncreaseMassRejectedAboveLimit(t *testing.T) {
	engine := newTestEngine()
	// stock pressure is 130.8, which is at or above the limit of 110
	require.GreaterOrEqual(t, engine.GetPressure(), engine.cfg.PressureLimit)

	engine.IncreaseMass(5)
	assert.Equal(t, InitialMass, engine.mass)
}

func TestDecreaseMassAboveUpperLimit(t *testing.T) {
	engine := newTestEngine()
	// stock pressure 130.8 sits above the upper pressure limit of 125
	require.Greater(t, engine.GetPressure(), engine.cfg.UpperPressureLimit)

	engine.DecreaseMass(2)
	assert.Equal(t, 8.0, engine.mass)
	assert.Equal(t, engine.mass*engine.temperature/molarVolume, engine.GetPressure())
}

func TestDecreaseMassRejectedBelowUpperLimit(t *testing.T) {
	engine := newTestEngine()
	// mass=10, temperature=112 => pressure=50, below the upper limit
	engine.temperature = 112

	engine.DecreaseMass(2)
	assert.Equal(t, InitialMass, engine.mass)
}

func TestMutationsFrozenWhileDestroyed(t *testing.T) {
	engine := newTestEngine()
	engine.temperature = 112 // pressure=50, both gates would otherwise differ
	engine.destroyed = true

	engine.IncreaseMass(5)
	engine.DecreaseMass(5)
	assert.Equal(t, InitialMass, engine.mass)
	assert.Equal(t, 112.0, engine.temperature)
	assert.True(t, engine.IsDestroyed())
}

func TestTickImplosion(t *testing.T) {
	engine := newTestEngine()
	// mass=10, temperature=100 => pressure=44.6; a -15 drift lands at
	// 85 => pressure=37.9, below the implosion limit of 40
	engine.temperature = 100
	engine.tempDelta = func() float64 { return -15 }

	engine.Tick()
	assert.True(t, engine.IsDestroyed())
	assert.InDelta(t, 37.946, engine.GetPressure(), 0.001)
}

func TestTickExplosion(t *testing.T) {
	engine := newTestEngine()
	// stock pressure is 130.8; a +15 drift lands at 308 => 137.5, still
	// inside the band; push temperature first so the drift crosses 140
	engine.temperature = 300 // pressure=133.9
	engine.tempDelta = func() float64 { return 15 }

	engine.Tick()
	assert.True(t, engine.IsDestroyed())
	assert.Greater(t, engine.GetPressure(), engine.cfg.ExplosionLimit)
}

func TestTickWithinBandStaysStable(t *testing.T) {
	engine := newTestEngine()
	engine.tempDelta = func() float64 { return 0 }

	engine.Tick()
	assert.False(t, engine.IsDestroyed())
	assert.Equal(t, InitialTemperature, engine.temperature)
}

func TestResetOnTickAfterDestruction(t *testing.T) {
	engine := newTestEngine()
	engine.temperature = 100
	engine.tempDelta = func() float64 { return -15 }

	// tick N: destruction detected, state frozen
	engine.Tick()
	require.True(t, engine.IsDestroyed())
	require.Equal(t, 85.0, engine.temperature)

	// tick N+1: unconditional reset to the initial state, no drift
	engine.Tick()
	assert.False(t, engine.IsDestroyed())
	assert.Equal(t, InitialMass, engine.mass)
	assert.Equal(t, InitialTemperature, engine.temperature)

	// tick N+2: back to normal drift
	engine.Tick()
	assert.Equal(t, InitialTemperature-15, engine.temperature)
}

func TestConcurrentIncreaseMassNoLostUpdates(t *testing.T) {
	engine := newTestEngine()
	// zero temperature pins derived pressure at zero, below the limit,
	// regardless of how much mass the calls add; the background updater
	// is not running, so nothing else mutates state
	engine.temperature = 0

	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine.IncreaseMass(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, InitialMass+1000, engine.mass)
}

func TestPressureIsNeverCached(t *testing.T) {
	engine := newTestEngine()
	engine.temperature = 112
	first := engine.GetPressure()

	engine.IncreaseMass(5)
	second := engine.GetPressure()
	assert.NotEqual(t, first, second)
	assert.Equal(t, 15.0*112/molarVolume, second)
}

func TestNegativeAmountGatedByIncreaseThreshold(t *testing.T) {
	engine := newTestEngine()
	engine.temperature = 112 // pressure=50, increase gate open

	// sign is not validated; a negative amount is a net decrease that
	// still goes through the increase gate
	engine.IncreaseMass(-3)
	assert.Equal(t, 7.0, engine.mass)
}
