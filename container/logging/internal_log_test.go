// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2026, time.January, 10, 12, 30, 45, 123000000, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "Mass added",
		Data: logrus.Fields{
			"mass":   15.0,
			"amount": 5.0,
		},
	}

	out, err := (&InternalFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "10 Jan 2026 12:30:45.123 [INFO] Mass added amount=5 mass=15\n", string(out))
}
