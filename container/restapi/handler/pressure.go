// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/restapi/rendering"
)

type pressureHandler struct {
	gw  gateway.Gateway
	log logrus.FieldLogger
}

func (h *pressureHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	pressure, err := h.gw.GetPressure(request.Context())
	if err != nil {
		h.log.WithError(err).Error("Pressure read failed")
		rendering.RenderInternalServerError(writer, request)
		return
	}

	rendering.RenderPressure(writer, request, pressure)
}

// NewPressureHandler returns a new instance of http handler
// for serving /container/pressure.
func NewPressureHandler(gw gateway.Gateway, log logrus.FieldLogger) http.Handler {
	return &pressureHandler{gw: gw, log: log}
}
