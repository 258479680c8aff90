package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/equiphub/booking-service/config"
	"github.com/equiphub/booking-service/internal/audit"
	"github.com/equiphub/booking-service/internal/handler"
	"github.com/equiphub/booking-service/internal/repository"
	"github.com/equiphub/booking-service/internal/server"
	"github.com/equiphub/booking-service/internal/service"
	"github.com/equiphub/booking-service/migrations"
	"github.com/equiphub/booking-service/pkg/kafka"
	"github.com/equiphub/booking-service/pkg/logger"
	"github.com/equiphub/booking-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "booking")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %w", err)
	}
	svc := service.NewService(repo, audit.NewPublisher(producer, kafka.AuditTopic, log), log)
	h := handler.New(svc, log)

	consumerGroup, err := kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}
	consumeCtx, stopConsume := context.WithCancel(context.Background())
	g := new(errgroup.Group)
	g.Go(func() error {
		kafka.Consume(consumeCtx, consumerGroup, audit.NewConsumer(repo.CreateAuditLog, log), kafka.AuditTopic, log)
		return nil
	})

	srv := server.NewServer(cfg.Server, h.NewRouter(cfg.Auth))
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	stopConsume()
	if err := g.Wait(); err != nil {
		log.Error("consumer stop", zap.Error(err))
	}
	if err := consumerGroup.Close(); err != nil {
		log.Error("consumerGroup.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
