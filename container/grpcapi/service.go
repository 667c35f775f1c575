// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package grpcapi binds the canonical container contract to gRPC.
package grpcapi

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tankworks/gastank/container/gateway"
	"github.com/tankworks/gastank/container/grpcapi/containerpb"
)

// Service implements the Container gRPC service by forwarding every
// call to the gateway verbatim. Engine-declined mutations are OK
// responses; only transport or gateway failures become gRPC errors.
type Service struct {
	containerpb.UnimplementedContainerServer

	gw  gateway.Gateway
	log logrus.FieldLogger
}

// NewService returns a Service bound to gw.
func NewService(gw gateway.Gateway, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{gw: gw, log: log}
}

func (s *Service) IncreaseMass(ctx context.Context, req *containerpb.MassRequest) (*containerpb.MassResponse, error) {
	if err := s.gw.IncreaseMass(ctx, req.GetAmount()); err != nil {
		s.log.WithError(err).Error("Mass increase call failed")
		return nil, status.Error(codes.Internal, "mass increase failed")
	}
	return &containerpb.MassResponse{}, nil
}

func (s *Service) DecreaseMass(ctx context.Context, req *containerpb.MassRequest) (*containerpb.MassResponse, error) {
	if err := s.gw.DecreaseMass(ctx, req.GetAmount()); err != nil {
		s.log.WithError(err).Error("Mass decrease call failed")
		return nil, status.Error(codes.Internal, "mass decrease failed")
	}
	return &containerpb.MassResponse{}, nil
}

func (s *Service) GetPressure(ctx context.Context, _ *containerpb.PressureRequest) (*containerpb.PressureResponse, error) {
	pressure, err := s.gw.GetPressure(ctx)
	if err != nil {
		s.log.WithError(err).Error("Pressure read failed")
		return nil, status.Error(codes.Internal, "pressure read failed")
	}
	return &containerpb.PressureResponse{Pressure: pressure}, nil
}

func (s *Service) IsDestroyed(ctx context.Context, _ *containerpb.DestroyedRequest) (*containerpb.DestroyedResponse, error) {
	destroyed, err := s.gw.IsDestroyed(ctx)
	if err != nil {
		s.log.WithError(err).Error("Destroyed flag read failed")
		return nil, status.Error(codes.Internal, "destroyed read failed")
	}
	return &containerpb.DestroyedResponse{Destroyed: destroyed}, nil
}
