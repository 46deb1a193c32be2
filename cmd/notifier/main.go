package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/handlers/event"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/handlers/notification"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/handlers/template"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/router"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/server"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/channel"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/config"
	notifmsg "github.com/Djtv1304/ambacar-backend-notifications/internal/rabbitmq/handlers/notification"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/rabbitmq/queue"
	customerrepo "github.com/Djtv1304/ambacar-backend-notifications/internal/repository/customer"
	notifrepo "github.com/Djtv1304/ambacar-backend-notifications/internal/repository/notification"
	orchrepo "github.com/Djtv1304/ambacar-backend-notifications/internal/repository/orchestration"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/scheduler"
	notifsvc "github.com/Djtv1304/ambacar-backend-notifications/internal/service/notification"
	orchsvc "github.com/Djtv1304/ambacar-backend-notifications/internal/service/orchestration"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/worker"
	"github.com/Djtv1304/ambacar-backend-notifications/pkg/email"
	"github.com/Djtv1304/ambacar-backend-notifications/pkg/webpush"
	"github.com/Djtv1304/ambacar-backend-notifications/pkg/whatsapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	zerolog.SetGlobalLevel(cfg.Log.ZerologLevel())
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

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	notifications := notifrepo.NewRepository(db)
	configs := orchrepo.NewRepository(db)
	customers := customerrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.Timeout,
	)
	whatsAppClient := whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.APIKey, cfg.WhatsApp.Instance, cfg.WhatsApp.Timeout)
	pushClient := webpush.NewClient(
		cfg.Push.VAPIDPublicKey,
		cfg.Push.VAPIDPrivateKey,
		cfg.Push.Subscriber,
		time.Duration(cfg.Push.TTL)*time.Second,
		cfg.Push.Timeout,
	)

	adapters := channel.NewRegistry(
		channel.NewEmail(emailClient),
		channel.NewWhatsApp(whatsAppClient),
		channel.NewPush(pushClient, customers),
	)

	sched := scheduler.New(q, rdb, cfg.Retry, cfg.Scheduler.Key, cfg.Scheduler.PollInterval, cfg.Scheduler.BatchSize)

	dispatch := notifsvc.NewService(notifications, customers, sched, adapters, rdb, cfg.Retry, cfg.Dispatch)
	orchestrator := orchsvc.NewService(configs, customers, dispatch, cfg.Orchestration)

	messageHandler := notifmsg.NewHandler(dispatch)
	notifier := worker.NewNotifier(q, messageHandler, dispatch)

	sweeper, err := worker.NewSweeper(dispatch, cfg.Sweep)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create sweeper")
	}

	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)
	go sched.Run(ctx)
	go func() {
		if err := sweeper.Run(ctx); err != nil {
			zlog.Logger.Error().Err(err).Msg("sweeper stopped with error")
		}
	}()

	r := router.New(
		event.NewHandler(orchestrator, val),
		notification.NewHandler(dispatch, cfg),
		template.NewHandler(val),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("notification service started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
