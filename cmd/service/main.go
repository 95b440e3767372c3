package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/team-chat-service/internal/client/centrifugo"
	"github.com/s21platform/team-chat-service/internal/client/storage"
	"github.com/s21platform/team-chat-service/internal/config"
	api "github.com/s21platform/team-chat-service/internal/generated"
	"github.com/s21platform/team-chat-service/internal/infra"
	"github.com/s21platform/team-chat-service/internal/metrics"
	"github.com/s21platform/team-chat-service/internal/pkg/jwt"
	"github.com/s21platform/team-chat-service/internal/pkg/tx"
	"github.com/s21platform/team-chat-service/internal/pkg/validator"
	db "github.com/s21platform/team-chat-service/internal/repository/postgres"
	"github.com/s21platform/team-chat-service/internal/repository/versions"
	"github.com/s21platform/team-chat-service/internal/rest"
	"github.com/s21platform/team-chat-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	if err := dbRepo.ApplyMigrations(context.Background()); err != nil {
		logger.Error(fmt.Sprintf("failed to apply migrations: %v", err))
		return
	}

	versionStore, err := versions.New(cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect redis: %v", err))
		return
	}
	defer versionStore.Close() //nolint:errcheck // .

	storageClient, err := storage.New(cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect object storage: %v", err))
		return
	}

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)

	chatService := service.New(dbRepo, storageClient, versionStore, centrifugeClient, cfg.Feed)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.AuthInterceptorGRPC,
			infra.LoggerGRPC(logger),
			tx.TxMiddlewareGRPC(dbRepo),
		),
	)
	healthServer := health.NewServer()
	healthServer.SetServingStatus(cfg.Service.Name, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	handler := rest.New(chatService, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Handle("/metrics", metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.AuthInterceptorHTTP(next)
		})
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})
		r.Use(func(next http.Handler) http.Handler {
			return tx.TxMiddlewareHTTP(dbRepo)(next)
		})

		api.HandlerFromMux(handler, r)
	})

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
