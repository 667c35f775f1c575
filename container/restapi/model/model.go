// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

// MassRequest is the body of a mass mutation request.
type MassRequest struct {
	Amount float64 `json:"amount"`
}

// StatusResponse is a response returned by the API server,
// providing status information.
type StatusResponse struct {
	Status string `json:"status"`
}

// PressureResponse carries the derived container pressure.
type PressureResponse struct {
	Pressure float64 `json:"pressure"`
}

// DestroyedResponse carries the destroyed flag.
type DestroyedResponse struct {
	Destroyed bool `json:"destroyed"`
}

// ErrorResponse is a standard error response, providing information
// about the error.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}
