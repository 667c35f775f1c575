// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rendering writes canonical API responses.
package rendering

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/tankworks/gastank/container/restapi/model"
)

const (
	// ErrorTypeInternalServerError error type for internal server error
	ErrorTypeInternalServerError = "InternalServerError"
	// ErrorTypeInvalidRequest error type for malformed requests
	ErrorTypeInvalidRequest = "InvalidRequest"
)

// RenderAccepted renders the accepted status response. Mutations that
// the engine declined still render this: unchanged state is a
// successful outcome, not a failure.
func RenderAccepted(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, &model.StatusResponse{Status: "OK"})
}

// RenderPressure renders the derived pressure value.
func RenderPressure(w http.ResponseWriter, r *http.Request, pressure float64) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &model.PressureResponse{Pressure: pressure})
}

// RenderDestroyed renders the destroyed flag.
func RenderDestroyed(w http.ResponseWriter, r *http.Request, destroyed bool) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &model.DestroyedResponse{Destroyed: destroyed})
}

// RenderInvalidRequest renders a bad request error response.
func RenderInvalidRequest(w http.ResponseWriter, r *http.Request, format string, args ...interface{}) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, &model.ErrorResponse{
		ErrorType:    ErrorTypeInvalidRequest,
		ErrorMessage: fmt.Sprintf(format, args...),
	})
}

// RenderInternalServerError renders an internal server error response.
func RenderInternalServerError(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, &model.ErrorResponse{
		ErrorType:    ErrorTypeInternalServerError,
		ErrorMessage: "Internal Server Error",
	})
}
