// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/tankworks/gastank/container/core"
	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/grpcapi"
	"github.com/tankworks/gastank/container/logging"
	"github.com/tankworks/gastank/container/restapi"
	"github.com/tankworks/gastank/container/rpcapi"

	log "github.com/sirupsen/logrus"
)

type options struct {
	LogLevel string `long:"log-level" default:"info" description:"log level"`
	Host     string `long:"host" default:"0.0.0.0" description:"listen host for all bindings"`
	HTTPPort int    `long:"http-port" default:"8080" description:"HTTP API port"`
	GRPCPort int    `long:"grpc-port" default:"8081" description:"gRPC API port"`
	RPCPort  int    `long:"rpc-port" default:"8082" description:"net/rpc API port"`
}

func main() {
	opts := getCLIArgs()
	logging.SetLogLevel(opts.LogLevel)

	cfg, err := core.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load container configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := core.NewEngine(cfg, log.StandardLogger())
	gw := gateway.NewLocal(engine)

	httpServer := restapi.NewServer(opts.Host, opts.HTTPPort, gw, log.StandardLogger())
	grpcServer := grpcapi.NewServer(opts.Host, opts.GRPCPort, gw, log.StandardLogger())
	rpcServer := rpcapi.NewServer(opts.Host, opts.RPCPort, gw, log.StandardLogger())

	if err := httpServer.Listen(); err != nil {
		log.WithError(err).Fatal("Failed to listen on HTTP port")
	}
	if err := grpcServer.Listen(); err != nil {
		log.WithError(err).Fatal("Failed to listen on gRPC port")
	}
	if err := rpcServer.Listen(); err != nil {
		log.WithError(err).Fatal("Failed to listen on rpc port")
	}

	log.WithFields(log.Fields{
		"http": httpServer.Port(),
		"grpc": grpcServer.Port(),
		"rpc":  rpcServer.Port(),
	}).Info("Container servers listening")

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		engine.RunUpdater(ctx)
		return nil
	})
	group.Go(func() error { return httpServer.Serve(ctx) })
	group.Go(func() error { return grpcServer.Serve(ctx) })
	group.Go(func() error { return rpcServer.Serve(ctx) })

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("Container server exited")
	}
	log.Info("Container server shut down")
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(os.Args); err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}
	return opts
}
