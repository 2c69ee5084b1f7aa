package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"docchat-api/config"
	"docchat-api/internal/application/ports"
	"docchat-api/internal/application/services"
	"docchat-api/internal/infrastructure/db/postgres"
	fileRepo "docchat-api/internal/infrastructure/db/postgres/file"
	messageRepo "docchat-api/internal/infrastructure/db/postgres/message"
	userRepo "docchat-api/internal/infrastructure/db/postgres/user"
	"docchat-api/internal/infrastructure/identity"
	"docchat-api/internal/infrastructure/metrics"
	"docchat-api/internal/infrastructure/mq"
	"docchat-api/internal/infrastructure/s3"
	"docchat-api/internal/infrastructure/stripe"
	"docchat-api/internal/interface/api/rpc"
	"docchat-api/internal/interface/api/rpc/middleware"
	"docchat-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	storage    ports.ObjectStorage
	billing    ports.BillingProvider
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err = postgres.Migrate(ctx, logger, dbDsn); err != nil {
		logger.Fatal("failed to run db migrations", zap.Error(err))
	}

	// s3
	s3Client, err := s3.New(ctx, logger, cfg.S3)
	if err != nil {
		logger.Fatal("failed to connect to S3", zap.Error(err))
	}

	// stripe
	stripeClient := stripe.New(logger, cfg.Stripe)

	// rabbitMQ publisher
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}

	return &App{
		logger:   logger,
		cfg:      cfg,
		db:       dbPool,
		storage:  s3Client,
		billing:  stripeClient,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		mq:       rbMQ,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run launches the HTTP server and the MQ workers under one errgroup, so a
// single context drives graceful shutdown of all of them.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	users := userRepo.NewRepository(a.db)
	files := fileRepo.NewRepository(a.db)
	messages := messageRepo.NewRepository(a.db)

	// services
	resolver := identity.New(a.cfg.App.JWTSecret)
	accountService := services.NewAccountService(users, a.mq, a.mCounter)
	fileService := services.NewFileService(a.logger, a.storage, files, a.mq, a.mCounter)
	messageService := services.NewMessageService(messages, files)
	billingService := services.NewBillingService(a.logger, a.billing, users, a.cfg.Stripe)

	// upload ingest consumer, fed by the external upload pipeline
	consumer := rmqconsumer.New(a.cfg.MQ, a.logger, fileService)
	rabbitDsn, err := a.cfg.AMQPDSN()
	if err != nil {
		a.logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	if err = consumer.Connect(rabbitDsn); err != nil {
		a.logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = consumer.Init(); err != nil {
		a.logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}
	a.mqConsumer = consumer

	// procedures
	router := rpc.NewRouter(a.router, a.logger, resolver)
	rpc.NewAuthController(router, a.logger, accountService)
	rpc.NewFileController(router, a.logger, fileService)
	rpc.NewMessageController(router, a.logger, messageService, a.cfg.DefaultPageLimit)
	rpc.NewBillingController(router, a.logger, billingService)

	// ops
	a.router.GET(rpc.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rpc.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
