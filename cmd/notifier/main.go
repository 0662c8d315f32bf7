package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/api/handlers/notification"
	"github.com/aliskhannn/notification-dispatcher/internal/api/router"
	"github.com/aliskhannn/notification-dispatcher/internal/api/server"
	"github.com/aliskhannn/notification-dispatcher/internal/cache"
	"github.com/aliskhannn/notification-dispatcher/internal/channel"
	"github.com/aliskhannn/notification-dispatcher/internal/config"
	notifmsg "github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/handlers/notification"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/notification-dispatcher/internal/repository/status"
	notifsvc "github.com/aliskhannn/notification-dispatcher/internal/service/notification"
	"github.com/aliskhannn/notification-dispatcher/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewNotificationQueue(ch, cfg.RabbitMQ)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notification queue")
	}

	var (
		store status.Store
		db    *dbpg.DB
	)

	switch cfg.Database.Driver {
	case "memory":
		zlog.Logger.Warn().Msg("using in-memory status store, statuses are lost on restart")
		store = status.NewMemoryRepository()
	default:
		opts := &dbpg.Options{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}

		slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
		for _, s := range cfg.Database.Slaves {
			slaveDSNs = append(slaveDSNs, s.DSN())
		}

		db, err = dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
		}

		store = status.NewRepository(db)
	}

	service := notifsvc.NewService(store, q)

	if cfg.Redis.Address != "" {
		rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)

		err = retry.Do(func() error {
			return rdb.Ping(ctx).Err()
		}, cfg.Retry)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
		}

		service.WithCache(cache.NewStatusCache(rdb.Client, cfg.Redis.TTL))
	} else {
		zlog.Logger.Info().Msg("redis address is empty, status cache disabled")
	}

	registry := channel.Default(cfg.Channels)
	notifHandler := notification.NewHandler(service, val, cfg)
	messageHandler := notifmsg.NewHandler(service, registry)

	notifier := worker.NewNotifier(q, messageHandler)

	notifierDone := make(chan struct{})
	go func() {
		defer close(notifierDone)
		if err := notifier.Run(ctx, cfg.Retry); err != nil {
			zlog.Logger.Error().Err(err).Msg("notifier stopped unexpectedly")
			stop()
		}
	}()

	r := router.New(notifHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	// The message in flight still needs the store and the broker channel.
	select {
	case <-notifierDone:
		zlog.Logger.Info().Msg("notifier finished")
	case <-shutdownCtx.Done():
		zlog.Logger.Warn().Msg("notifier did not finish before shutdown timeout")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if db != nil {
		if err := db.Master.Close(); err != nil {
			zlog.Logger.Printf("failed to close master DB: %v", err)
		}

		for i, slave := range db.Slaves {
			if err := slave.Close(); err != nil {
				zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
			}
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
