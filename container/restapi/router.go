// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package restapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/restapi/handler"
	"github.com/tankworks/gastank/container/restapi/middleware"
)

// NewRouter returns a new instance of chi router implementing
// the container API specification.
func NewRouter(gw gateway.Gateway, log logrus.FieldLogger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.AccessLogMiddleware(log))

	router.Get("/ping", handler.NewPingHandler().ServeHTTP)

	router.Post("/container/mass/increase", handler.NewIncreaseMassHandler(gw, log).ServeHTTP)
	router.Post("/container/mass/decrease", handler.NewDecreaseMassHandler(gw, log).ServeHTTP)
	router.Get("/container/pressure", handler.NewPressureHandler(gw, log).ServeHTTP)
	router.Get("/container/destroyed", handler.NewDestroyedHandler(gw, log).ServeHTTP)

	return router
}
