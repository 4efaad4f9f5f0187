package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/logging"
	"github.com/light-bringer/storefront-service/internal/services"
	"github.com/light-bringer/storefront-service/internal/transport/grpc/browse"
)

var configFile string

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Marketplace browse service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: ./config.yaml or ./configs/config.yaml)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the browse API over gRPC and HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})
	return root
}

func serve(parent context.Context) error {
	// 1. Load configuration
	cfg, err := config.Load(config.Options{ConfigFile: configFile})
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting storefront service",
		zap.String("environment", cfg.Environment),
		zap.String("source", cfg.Source.Kind),
		zap.Int("grpc_port", cfg.Servers.GRPC.Port),
		zap.Int("http_port", cfg.Servers.HTTP.Port),
	)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create gRPC server
	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     cfg.Servers.GRPC.MaxConnectionIdle,
			MaxConnectionAge:      cfg.Servers.GRPC.MaxConnectionAge,
			MaxConnectionAgeGrace: cfg.Servers.GRPC.MaxConnectionAgeGrace,
			Time:                  cfg.Servers.GRPC.KeepAliveTime,
			Timeout:               cfg.Servers.GRPC.KeepAliveTimeout,
		}),
		grpc.ChainUnaryInterceptor(browse.LoggingInterceptor(logger)),
	)
	browse.RegisterBrowseServiceServer(grpcServer, serviceOpts.BrowseHandler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Servers.GRPC.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	// 4. Create HTTP server
	httpServer := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Servers.HTTP.Port),
		Handler:      serviceOpts.HTTPHandler,
		ReadTimeout:  cfg.Servers.HTTP.ReadTimeout,
		WriteTimeout: cfg.Servers.HTTP.WriteTimeout,
	}

	// 5. Run servers and the session sweeper until a signal arrives
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Views.IdleTTL > 0 {
		g.Go(func() error {
			return serviceOpts.Sessions.RunSweeper(gctx, cfg.Views.SweepInterval, logger)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Servers.HTTP.ShutdownTimeout)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	logger.Info("stopped")
	return nil
}
