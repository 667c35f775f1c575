// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package peer implements the autonomous container clients.

A peer polls the canonical read operations on a fixed interval and
conditionally requests a mass mutation. The feeder adds mass while
pressure sits below the increase threshold; the venter removes mass
while pressure sits above the decrease threshold. The engine re-checks
both thresholds under its own lock, so a peer races other peers and the
background updater safely: a stale decision degrades into an engine
no-op, never into an error.

Transport failures back off exponentially and the loop retries for as
long as its context lives.
*/
package peer

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"

	"github.com/tankworks/gastank/container/gateway"
)

// Config holds peer loop settings.
type Config struct {
	// PollInterval is the delay between condition checks.
	PollInterval time.Duration
	// Amount is the mass requested per mutation.
	Amount float64
	// Threshold is the pressure bound the peer checks before asking
	// for a mutation; it mirrors the engine-side limit.
	Threshold float64
}

// Loop is one autonomous peer client.
type Loop struct {
	gw   gateway.Gateway
	cfg  Config
	log  logrus.FieldLogger
	want func(pressure float64) bool
	act  func(ctx context.Context) error
}

// NewFeeder returns a peer that adds cfg.Amount of mass whenever
// pressure is below cfg.Threshold.
func NewFeeder(gw gateway.Gateway, cfg Config, log logrus.FieldLogger) *Loop {
	if log == nil {
		log = logrus.StandardLogger()
	}
	l := &Loop{gw: gw, cfg: cfg, log: log.WithField("peer", "feeder")}
	l.want = func(pressure float64) bool { return pressure < cfg.Threshold }
	l.act = func(ctx context.Context) error { return gw.IncreaseMass(ctx, cfg.Amount) }
	return l
}

// NewVenter returns a peer that removes cfg.Amount of mass whenever
// pressure is above cfg.Threshold.
func NewVenter(gw gateway.Gateway, cfg Config, log logrus.FieldLogger) *Loop {
	if log == nil {
		log = logrus.StandardLogger()
	}
	l := &Loop{gw: gw, cfg: cfg, log: log.WithField("peer", "venter")}
	l.want = func(pressure float64) bool { return pressure > cfg.Threshold }
	l.act = func(ctx context.Context) error { return gw.DecreaseMass(ctx, cfg.Amount) }
	return l
}

// Run polls until ctx is cancelled. Transport failures are retried
// with exponential backoff; the loop never gives up on its own.
func (l *Loop) Run(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()

	ticker := time.NewTicker(l.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := l.step(ctx); err != nil {
			wait := bo.NextBackOff()
			l.log.WithError(err).Warnf("Container unreachable, retrying in %s", wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}
		bo.Reset()
	}
}

// step runs one poll-and-maybe-mutate round trip.
func (l *Loop) step(ctx context.Context) error {
	destroyed, err := l.gw.IsDestroyed(ctx)
	if err != nil {
		return err
	}
	if destroyed {
		l.log.Debug("Container destroyed, standing by")
		return nil
	}

	pressure, err := l.gw.GetPressure(ctx)
	if err != nil {
		return err
	}
	if !l.want(pressure) {
		return nil
	}

	l.log.WithFields(logrus.Fields{
		"pressure": pressure,
		"amount":   l.cfg.Amount,
	}).Info("Requesting mass change")
	return l.act(ctx)
}
