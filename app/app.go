package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/baeksh/quickreserve/config"
	"github.com/baeksh/quickreserve/internal/events"
	"github.com/baeksh/quickreserve/internal/handler"
	"github.com/baeksh/quickreserve/internal/repository"
	"github.com/baeksh/quickreserve/internal/server"
	"github.com/baeksh/quickreserve/internal/service"
	"github.com/baeksh/quickreserve/migrations"
	"github.com/baeksh/quickreserve/pkg/kafka"
	"github.com/baeksh/quickreserve/pkg/logger"
	"github.com/baeksh/quickreserve/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "quickreserve")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}

	userRepo, err := repository.NewUserRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo users %w", err)
	}
	restaurantRepo, err := repository.NewRestaurantRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo restaurants %w", err)
	}
	reservationRepo, err := repository.NewReservationRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo reservations %w", err)
	}
	reviewRepo, err := repository.NewReviewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo reviews %w", err)
	}

	var pub events.Publisher
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer %w", err)
		}
		defer producer.Close()
		pub = events.NewPublisher(producer)
	}

	h := handler.New(handler.Services{
		Auth:        service.NewAuthService(userRepo, log),
		Restaurant:  service.NewRestaurantService(restaurantRepo, userRepo, log),
		Reservation: service.NewReservationService(userRepo, restaurantRepo, reservationRepo, pub, log),
		Review:      service.NewReviewService(reviewRepo, restaurantRepo, userRepo, log),
	}, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
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
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
