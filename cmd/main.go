package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/carrylink/carrylink/internal/auth"
	"github.com/carrylink/carrylink/internal/cache"
	"github.com/carrylink/carrylink/internal/db"
	"github.com/carrylink/carrylink/internal/grpcserver"
	"github.com/carrylink/carrylink/internal/kafka"
	"github.com/carrylink/carrylink/internal/lifecycle"
	"github.com/carrylink/carrylink/internal/logger"
	"github.com/carrylink/carrylink/internal/repository/postgresql"
	"github.com/carrylink/carrylink/internal/server"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}

	requestRepo := postgresql.NewRequestRepo(database)
	interestRepo := postgresql.NewInterestRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	sessionRepo := postgresql.NewSessionRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo(database)

	auditTopic := envOr("KAFKA_AUDIT_TOPIC", "request_audit")

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewKafkaProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer(log)
	}

	listingCache := cache.NewListingCache()
	lifecycleSvc := lifecycle.NewService(requestRepo, interestRepo, outboxRepo, listingCache, auditTopic, log)
	authSvc := auth.NewService(userRepo, sessionRepo)

	srv := server.New(lifecycleSvc, authSvc, log)
	grpcSrv := grpcserver.New(log)
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
	}, log)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run(envOr("HTTP_PORT", "9000"))
	})
	group.Go(func() error {
		return grpcSrv.Run(envOr("GRPC_PORT", "9001"))
	})
	group.Go(func() error {
		publisher.Run(groupCtx)
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown failed", zap.Error(err))
		}
		grpcSrv.Shutdown(shutdownCtx)
		publisher.Shutdown()
		return nil
	})

	log.Info("carrylink started")

	if err := group.Wait(); err != nil {
		log.Fatal("carrylink exited with error", zap.Error(err))
	}
	log.Info("carrylink gracefully stopped")
}
