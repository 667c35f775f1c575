// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package grpcapi

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/grpcapi/containerpb"
)

// Server serves the Container gRPC service.
type Server struct {
	host     string
	port     int
	server   *grpc.Server
	listener net.Listener
	log      logrus.FieldLogger
}

// NewServer creates a new gRPC Server bound to gw. Listen and Serve
// are separated the same way as in the HTTP binding.
func NewServer(host string, port int, gw gateway.Gateway, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}

	server := grpc.NewServer()
	containerpb.RegisterContainerServer(server, NewService(gw, log))

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

	s.log.Debugf("Container gRPC Server listening on %s:%d", s.host, s.port)

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

// Serve requests until ctx is cancelled, then stop gracefully.
func (s *Server) Serve(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- s.server.Serve(s.listener)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		s.server.GracefulStop()
		return ctx.Err()
	}
}

// Close forcefully stops the server and closes all connections.
func (s *Server) Close() {
	s.server.Stop()
}
