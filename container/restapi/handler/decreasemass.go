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

type decreaseMassHandler struct {
	gw  gateway.Gateway
	log logrus.FieldLogger
}

func (h *decreaseMassHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	var req model.MassRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		h.log.WithError(err).Warn("Failed to decode mass decrease request")
		rendering.RenderInvalidRequest(writer, request, "Invalid mass request body")
		return
	}

	if err := h.gw.DecreaseMass(request.Context(), req.Amount); err != nil {
		h.log.WithError(err).Error("Mass decrease call failed")
		rendering.RenderInternalServerError(writer, request)
		return
	}

	rendering.RenderAccepted(writer, request)
}

// NewDecreaseMassHandler returns a new instance of http handler
// for serving /container/mass/decrease.
func NewDecreaseMassHandler(gw gateway.Gateway, log logrus.FieldLogger) http.Handler {
	return &decreaseMassHandler{gw: gw, log: log}
}
