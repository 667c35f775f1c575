// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncreaseMassAccepted(t *testing.T) {
	gw := &fakeGateway{}
	h := NewIncreaseMassHandler(gw, testLogger())
	responseRecorder := httptest.NewRecorder()

	request := httptest.NewRequest("POST", "/container/mass/increase", strings.NewReader(`{"amount": 5}`))
	h.ServeHTTP(responseRecorder, request)

	assert.Equal(t, http.StatusAccepted, responseRecorder.Code)
	assert.JSONEq(t, `{"status":"OK"}`, responseRecorder.Body.String())
	assert.Equal(t, []float64{5}, gw.increased)
}

func TestIncreaseMassInvalidBody(t *testing.T) {
	gw := &fakeGateway{}
	h := NewIncreaseMassHandler(gw, testLogger())
	responseRecorder := httptest.NewRecorder()

	request := httptest.NewRequest("POST", "/container/mass/increase", strings.NewReader("not json"))
	h.ServeHTTP(responseRecorder, request)

	assert.Equal(t, http.StatusBadRequest, responseRecorder.Code)
	assert.Contains(t, responseRecorder.Body.String(), "InvalidRequest")
	assert.Empty(t, gw.increased)
}

func TestIncreaseMassGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}
	h := NewIncreaseMassHandler(gw, testLogger())
	responseRecorder := httptest.NewRecorder()

	request := httptest.NewRequest("POST", "/container/mass/increase", strings.NewReader(`{"amount": 1}`))
	h.ServeHTTP(responseRecorder, request)

	assert.Equal(t, http.StatusInternalServerError, responseRecorder.Code)
	assert.Contains(t, responseRecorder.Body.String(), "InternalServerError")
}

func TestDecreaseMassAccepted(t *testing.T) {
	gw := &fakeGateway{}
	h := NewDecreaseMassHandler(gw, testLogger())
	responseRecorder := httptest.NewRecorder()

	request := httptest.NewRequest("POST", "/container/mass/decrease", strings.NewReader(`{"amount": 2.5}`))
	h.ServeHTTP(responseRecorder, request)

	assert.Equal(t, http.StatusAccepted, responseRecorder.Code)
	assert.Equal(t, []float64{2.5}, gw.decreased)
}
