// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/restapi/rendering"
)

type destroyedHandler struct {
	gw  gateway.Gateway
	log logrus.FieldLogger
}

func (h *destroyedHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	destroyed, err := h.gw.IsDestroyed(request.Context())
	if err != nil {
		h.log.WithError(err).Error("Destroyed flag read failed")
		rendering.RenderInternalServerError(writer, request)
		return
	}

	rendering.RenderDestroyed(writer, request, destroyed)
}

// NewDestroyedHandler returns a new instance of http handler
// for serving /container/destroyed.
func NewDestroyedHandler(gw gateway.Gateway, log logrus.FieldLogger) http.Handler {
	return &destroyedHandler{gw: gw, log: log}
}
