// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// InitialMass is the mass the container starts with and resets to.
	InitialMass = 10.0
	// InitialTemperature is the start and reset temperature, in Kelvin.
	InitialTemperature = 293.0

	// molarVolume is the ideal-gas proportionality constant relating
	// mass and temperature to pressure.
	molarVolume = 22.4

	// maxTempDelta bounds the per-tick temperature drift. The delta is
	// drawn uniformly from the inclusive integer range [-15, +15].
	maxTempDelta = 15
)

// Engine owns the single container state instance for the process
// lifetime. All reads and writes of the mutable fields happen under one
// exclusive lock; every critical section is O(1) and lock-only.
type Engine struct {
	mu          sync.Mutex
	mass        float64
	temperature float64
	destroyed   bool

	cfg Config
	log logrus.FieldLogger

	// tempDelta produces the per-tick temperature drift. Tests swap it
	// for a deterministic source.
	tempDelta func() float64
}

// NewEngine returns an Engine holding the initial container state.
// A nil logger falls back to the logrus standard logger.
func NewEngine(cfg Config, log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		mass:        InitialMass,
		temperature: InitialTemperature,
		cfg:         cfg,
		log:         log,
		tempDelta: func() float64 {
			return float64(rand.Intn(2*maxTempDelta+1) - maxTempDelta)
		},
	}
}

// IncreaseMass adds amount to the container mass, provided the container
// is not destroyed and current pressure is below the pressure limit.
// Otherwise the call is a no-op; the rejection is logged, never surfaced
// as an error. The sign of amount is the caller's responsibility.
func (e *Engine) IncreaseMass(amount float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed || e.pressureLocked() >= e.cfg.PressureLimit {
		e.log.WithFields(logrus.Fields{
			"amount":    amount,
			"pressure":  e.pressureLocked(),
			"destroyed": e.destroyed,
		}).Info("Mass increase rejected")
		return
	}

	e.mass += amount
	e.log.WithFields(logrus.Fields{
		"amount":   amount,
		"mass":     e.mass,
		"pressure": e.pressureLocked(),
	}).Info("Mass added")
}

// DecreaseMass removes amount from the container mass, provided the
// container is not destroyed and current pressure is above the upper
// pressure limit. Otherwise the call is a no-op; the rejection is
// logged, never surfaced as an error.
func (e *Engine) DecreaseMass(amount float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed || e.pressureLocked() <= e.cfg.UpperPressureLimit {
		e.log.WithFields(logrus.Fields{
			"amount":    amount,
			"pressure":  e.pressureLocked(),
			"destroyed": e.destroyed,
		}).Info("Mass decrease rejected")
		return
	}

	e.mass -= amount
	e.log.WithFields(logrus.Fields{
		"amount":   amount,
		"mass":     e.mass,
		"pressure": e.pressureLocked(),
	}).Info("Mass removed")
}

// GetPressure returns the current pressure, derived from mass and
// temperature under the lock. The value is never cached.
func (e *Engine) GetPressure() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pressureLocked()
}

// IsDestroyed reports whether the container is currently destroyed.
func (e *Engine) IsDestroyed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.destroyed
}

// Tick executes one background update. A destroyed container is reset
// to the initial state; a stable one drifts in temperature and is
// destroyed when pressure leaves the [ImplosionLimit, ExplosionLimit]
// band. Destruction detected on tick N is therefore followed by the
// reset on tick N+1, never sooner.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		e.resetLocked()
		return
	}

	e.temperature += e.tempDelta()

	pressure := e.pressureLocked()
	if pressure < e.cfg.ImplosionLimit {
		e.destroyed = true
		e.log.WithField("pressure", pressure).Warn("Container imploded")
	} else if pressure > e.cfg.ExplosionLimit {
		e.destroyed = true
		e.log.WithField("pressure", pressure).Warn("Container exploded")
	}
}

// RunUpdater runs the periodic background update until ctx is
// cancelled. Exactly one updater is expected per Engine.
func (e *Engine) RunUpdater(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.log.Debug("Background updater stopped")
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

// pressureLocked derives pressure from the current mass and
// temperature. Callers must hold the lock.
func (e *Engine) pressureLocked() float64 {
	return e.mass * e.temperature / molarVolume
}

// resetLocked restores mass, temperature and the destroyed flag to
// their initial values. Callers must hold the lock. The reset is always
// complete, never partial.
func (e *Engine) resetLocked() {
	e.mass = InitialMass
	e.temperature = InitialTemperature
	e.destroyed = false
	e.log.WithFields(logrus.Fields{
		"mass":        e.mass,
		"temperature": e.temperature,
	}).Info("Container reset")
}
