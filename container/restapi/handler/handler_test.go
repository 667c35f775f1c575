// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// fakeGateway records canonical calls and serves canned reads.
type fakeGateway struct {
	increased []float64
	decreased []float64
	pressure  float64
	destroyed bool
	err       error
}

func (f *fakeGateway) IncreaseMass(_ context.Context, amount float64) error {
	if f.err != nil {
		return f.err
	}
	f.increased = append(f.increased, amount)
	return nil
}

func (f *fakeGateway) DecreaseMass(_ context.Context, amount float64) error {
	if f.err != nil {
		return f.err
	}
	f.decreased = append(f.decreased, amount)
	return nil
}

func (f *fakeGateway) GetPressure(_ context.Context) (float64, error) {
	return f.pressure, f.err
}

func (f *fakeGateway) IsDestroyed(_ context.Context) (bool, error) {
	return f.destroyed, f.err
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
