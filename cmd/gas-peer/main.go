// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/tankworks/gastank/container/core"
	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/grpcapi"
	"github.com/tankworks/gastank/container/logging"
	"github.com/tankworks/gastank/container/peer"
	"github.com/tankworks/gastank/container/restapi"
	"github.com/tankworks/gastank/container/rpcapi"

	log "github.com/sirupsen/logrus"
)

type options struct {
	LogLevel  string        `long:"log-level" default:"info" description:"log level"`
	Role      string        `long:"role" default:"feed" choice:"feed" choice:"vent" description:"peer role"`
	Protocol  string        `long:"protocol" default:"grpc" choice:"rest" choice:"grpc" choice:"rpc" description:"wire protocol"`
	Target    string        `long:"target" default:"127.0.0.1:8081" description:"container server address (base URL for rest)"`
	Amount    float64       `long:"amount" default:"5" description:"mass requested per mutation"`
	Interval  time.Duration `long:"interval" default:"2s" description:"poll interval"`
	Threshold float64       `long:"threshold" description:"pressure threshold (defaults to the role's engine limit)"`
}

func main() {
	opts := getCLIArgs()
	logging.SetLogLevel(opts.LogLevel)

	gw, err := buildGateway(opts.Protocol, opts.Target)
	if err != nil {
		log.WithError(err).Fatal("Failed to build container client")
	}

	loop := buildLoop(gw, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"role":     opts.Role,
		"protocol": opts.Protocol,
		"target":   opts.Target,
	}).Info("Peer started")

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("Peer exited")
	}
	log.Info("Peer shut down")
}

// buildGateway constructs the protocol client once; the loop reuses it
// for every call.
func buildGateway(protocol, target string) (gateway.Gateway, error) {
	switch protocol {
	case "rest":
		return restapi.NewClient(target), nil
	case "grpc":
		return grpcapi.Dial(target)
	case "rpc":
		// lazy: the first call dials, and the loop's backoff covers a
		// server that is not up yet
		return rpcapi.NewClient(target), nil
	default:
		return nil, errors.New("unknown protocol " + protocol)
	}
}

func buildLoop(gw gateway.Gateway, opts options) *peer.Loop {
	defaults := core.DefaultConfig()

	cfg := peer.Config{
		PollInterval: opts.Interval,
		Amount:       opts.Amount,
		Threshold:    opts.Threshold,
	}

	switch opts.Role {
	case "vent":
		if cfg.Threshold == 0 {
			cfg.Threshold = defaults.UpperPressureLimit
		}
		return peer.NewVenter(gw, cfg, log.StandardLogger())
	default:
		if cfg.Threshold == 0 {
			cfg.Threshold = defaults.PressureLimit
		}
		return peer.NewFeeder(gw, cfg, log.StandardLogger())
	}
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(os.Args); err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}
	return opts
}
