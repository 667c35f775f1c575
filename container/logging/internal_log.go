// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// SetOutput configures logging output for standard loggers.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// SetLogLevel sets the level for process-internal logging. Needs to be
// called very early during startup to configure logs emitted during
// initialization.
func SetLogLevel(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to set log level. Valid log levels are:", logrus.AllLevels)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&InternalFormatter{})
}

// InternalFormatter renders process-internal log lines:
// timestamp [level] message key=value...
type InternalFormatter struct{}

// Format implements logrus.Formatter for internal log entries.
func (f *InternalFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(entry.Time.Format("02 Jan 2006 15:04:05.000"))
	sb.WriteString(" [" + strings.ToUpper(entry.Level.String()) + "]")
	sb.WriteString(" " + entry.Message)

	for _, key := range sortedKeys(entry.Data) {
		sb.WriteString(fmt.Sprintf(" %s=%v", key, entry.Data[key]))
	}

	if entry.Caller != nil {
		sb.WriteString(fmt.Sprintf(" (%s:%d)", entry.Caller.File, entry.Caller.Line))
	}

	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
