// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/restapi/model"
	"github.com/tankworks/gastank/container/restapi/rendering"
)

type increaseMassHandler struct {
	gw  gateway.Gateway
	log logrus.FieldLogger
}

func (h *increaseMassHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	var req model.MassRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		h.log.WithError(err).Warn("Failed to decode mass increase request")
		rendering.RenderInvalidRequest(writer, request, "Invalid mass request body")
		return
	}

	if err := h.gw.IncreaseMass(request.Context(), req.Amount); err != nil {
		h.log.WithError(err).Error("Mass increase call failed")
		rendering.RenderInternalServerError(writer, request)
		return
	}

	// the engine may have declined the mutation; that is still an
	// accepted call, the wire contract carries no rejection signal
	rendering.RenderAccepted(writer, request)
}

// NewIncreaseMassHandler returns a new instance of http handler
// for serving /container/mass/increase.
func NewIncreaseMassHandler(gw gateway.Gateway, log logrus.FieldLogger) http.Handler {
	return &increaseMassHandler{gw: gw, log: log}
}
