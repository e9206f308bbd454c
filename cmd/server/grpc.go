package main

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// healthServer exposes grpc.health.v1.Health for orchestrators that probe
// over gRPC
type healthServer struct {
	server *grpc.Server
	health *health.Server
	addr   string
	logger *zap.Logger
}

func newHealthServer(addr string, logger *zap.Logger) *healthServer {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, hs)

	return &healthServer{server: server, health: hs, addr: addr, logger: logger}
}

// Serve listens until Stop is called
func (s *healthServer) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.logger.Info("starting gRPC health server", zap.String("addr", s.addr))
	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC health server failed: %w", err)
	}
	return nil
}

// SetServing flips the overall serving status
func (s *healthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
}

// Stop marks the server as not serving and drains it
func (s *healthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
