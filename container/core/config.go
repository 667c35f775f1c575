// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the fixed container limits and the background updater
// interval. Limits are configuration, not runtime state: they are read
// once at startup and never mutated afterwards.
type Config struct {
	// PressureLimit is the ceiling below which mass may be increased.
	PressureLimit float64 `env:"GASTANK_PRESSURE_LIMIT" envDefault:"110"`
	// UpperPressureLimit is the floor above which mass may be decreased.
	UpperPressureLimit float64 `env:"GASTANK_UPPER_PRESSURE_LIMIT" envDefault:"125"`
	// ImplosionLimit is the outer lower bound; dropping below it on a
	// tick destroys the container.
	ImplosionLimit float64 `env:"GASTANK_IMPLOSION_LIMIT" envDefault:"40"`
	// ExplosionLimit is the outer upper bound; exceeding it on a tick
	// destroys the container.
	ExplosionLimit float64 `env:"GASTANK_EXPLOSION_LIMIT" envDefault:"140"`
	// TickInterval is the background updater period.
	TickInterval time.Duration `env:"GASTANK_TICK_INTERVAL" envDefault:"2s"`
}

// DefaultConfig returns the stock limits without consulting the
// environment.
func DefaultConfig() Config {
	return Config{
		PressureLimit:      110,
		UpperPressureLimit: 125,
		ImplosionLimit:     40,
		ExplosionLimit:     140,
		TickInterval:       2 * time.Second,
	}
}

// LoadConfig reads the container configuration from the environment,
// falling back to the stock limits for unset variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
