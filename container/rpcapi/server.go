// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rpcapi binds the canonical container contract to net/rpc
// over TCP.
package rpcapi

import (
	"context"
	"fmt"
	"net"
	"net/rpc"

	"github.com/sirupsen/logrus"

	"github.com/tankworks/gastank/container/gateway"
)

// ServiceName is the registered net/rpc receiver name.
const ServiceName = "Container"

// MassArgs carries the amount of a mass mutation call.
type MassArgs struct {
	Amount float64
}

// Ack is the empty reply of a mass mutation call.
type Ack struct{}

// PressureReply carries the derived container pressure.
type PressureReply struct {
	Pressure float64
}

// DestroyedReply carries the destroyed flag.
type DestroyedReply struct {
	Destroyed bool
}

// Binding is the net/rpc receiver. Every method is a verbatim
// translation into a canonical call; rejected mutations are successful
// calls, not rpc errors.
type Binding struct {
	gw gateway.Gateway
}

func (b *Binding) IncreaseMass(args *MassArgs, _ *Ack) error {
	return b.gw.IncreaseMass(context.Background(), args.Amount)
}

func (b *Binding) DecreaseMass(args *MassArgs, _ *Ack) error {
	return b.gw.DecreaseMass(context.Background(), args.Amount)
}

func (b *Binding) GetPressure(_ *struct{}, reply *PressureReply) error {
	pressure, err := b.gw.GetPressure(context.Background())
	if err != nil {
		return err
	}
	reply.Pressure = pressure
	return nil
}

func (b *Binding) IsDestroyed(_ *struct{}, reply *DestroyedReply) error {
	destroyed, err := b.gw.IsDestroyed(context.Background())
	if err != nil {
		return err
	}
	reply.Destroyed = destroyed
	return nil
}

// Server accepts rpc connections and serves the Binding.
type Server struct {
	host     string
	port     int
	server   *rpc.Server
	listener net.Listener
	log      logrus.FieldLogger
}

// NewServer creates a new rpc Server bound to gw. Listen and Serve are
// separated the same way as in the HTTP binding.
func NewServer(host string, port int, gw gateway.Gateway, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}

	server := rpc.NewServer()
	if err := server.RegisterName(ServiceName, &Binding{gw: gw}); err != nil {
		// only fails on a malformed receiver, which is a programming error
		log.WithError(err).Panic("Failed to register rpc binding")
	}

	return &Server{
		host:   host,
		port:   port,
		server: server,
		log:    log,
	}
}

// Listen on port
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.host, s.port))
	if err != nil {
		return err
	}

	s.listener = ln
	if s.port == 0 {
		s.port = ln.Addr().(*net.TCPAddr).Port
		s.log.WithField("port", s.port).Info("Listening port was dynamically allocated")
	}

	s.log.Debugf("Container RPC Server listening on %s:%d", s.host, s.port)

	return nil
}

// Port is server's port
func (s *Server) Port() int {
	return s.port
}

// Addr is the host:port the server listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

// Serve accepts connections until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	defer s.Close()

	done := make(chan struct{})
	go func() {
		s.server.Accept(s.listener)
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the listener; in-flight calls finish on their own
// connections.
func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}
