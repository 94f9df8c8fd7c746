package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/narwhalmedia/greenroom/internal/container"
	grpcservice "github.com/narwhalmedia/greenroom/internal/infrastructure/grpc"
	"github.com/narwhalmedia/greenroom/internal/infrastructure/grpc/interceptors"
	"github.com/narwhalmedia/greenroom/pkg/config"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
	"github.com/narwhalmedia/greenroom/pkg/logger"
)

const serviceName = config.DefaultServiceName

func main() {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logCfg := cfg.Logger.ToLoggerConfig()
	logCfg.InitialFields = map[string]interface{}{"service": cfg.Service.Name}
	log, err := logCfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer log.Sync()

	log.Info("starting service",
		interfaces.String("version", config.GetServiceVersion(&cfg.Service)),
		interfaces.String("environment", cfg.Service.Environment),
		interfaces.Bool("events_enabled", cfg.Events.Enabled),
	)

	// Initialize service container with all dependencies
	gateway, cleanup, err := container.InitializeGateway(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize service", interfaces.Error(err))
	}
	defer cleanup()

	// Create gRPC server with interceptors
	rpcLog := log.Named("grpc")
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryRecoveryInterceptor(rpcLog),
			logger.UnaryServerInterceptor(rpcLog),
		),
	)

	// Register services
	grpcservice.RegisterToolServiceServer(grpcServer, gateway.ToolService)

	// Register health check
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)

	// Register reflection for grpcurl
	reflection.Register(grpcServer)

	grpcLis, err := net.Listen("tcp", config.GetGRPCListenAddress(&cfg.Service))
	if err != nil {
		log.Fatal("failed to listen on gRPC port", interfaces.Error(err))
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting gRPC server", interfaces.Int("port", cfg.Service.GRPCPort))
		serveErr <- grpcServer.Serve(grpcLis)
	}()

	// Wait for interrupt signal or a serve failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-sigChan:
		log.Info("shutting down service", interfaces.String("signal", sig.String()))
	case err := <-serveErr:
		log.Error("gRPC server stopped unexpectedly", interfaces.Error(err))
	}

	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
	defer shutdownCancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		log.Warn("shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		log.Info("gRPC server stopped gracefully")
	}

	log.Info("service shutdown complete")
}
