// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressureRead(t *testing.T) {
	gw := &fakeGateway{pressure: 130.8036}
	h := NewPressureHandler(gw, testLogger())
	responseRecorder := httptest.NewRecorder()

	h.ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/container/pressure", nil))

	assert.Equal(t, http.StatusOK, responseRecorder.Code)
	assert.JSONEq(t, `{"pressure":130.8036}`, responseRecorder.Body.String())
}

func TestPressureReadFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("timeout")}
	h := NewPressureHandler(gw, testLogger())
	responseRecorder := httptest.NewRecorder()

	h.ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/container/pressure", nil))

	assert.Equal(t, http.StatusInternalServerError, responseRecorder.Code)
}

func TestDestroyedRead(t *testing.T) {
	gw := &fakeGateway{destroyed: true}
	h := NewDestroyedHandler(gw, testLogger())
	responseRecorder := httptest.NewRecorder()

	h.ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/container/destroyed", nil))

	assert.Equal(t, http.StatusOK, responseRecorder.Code)
	assert.JSONEq(t, `{"destroyed":true}`, responseRecorder.Body.String())
}

func TestPingHandler(t *testing.T) {
	responseRecorder := httptest.NewRecorder()
	NewPingHandler().ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, responseRecorder.Code)
	assert.Equal(t, "pong", responseRecorder.Body.String())
}
