package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/catalog"
	"github.com/GlebRadaev/elaccess/internal/config"
	"github.com/GlebRadaev/elaccess/internal/handlers"
	"github.com/GlebRadaev/elaccess/internal/kafka"
	"github.com/GlebRadaev/elaccess/internal/metrics"
	"github.com/GlebRadaev/elaccess/internal/notify"
	"github.com/GlebRadaev/elaccess/internal/pg"
	"github.com/GlebRadaev/elaccess/internal/repo"
	"github.com/GlebRadaev/elaccess/internal/service"
	"github.com/GlebRadaev/elaccess/internal/service/registrationservice"
	"github.com/GlebRadaev/elaccess/internal/wizard"
	"github.com/GlebRadaev/elaccess/pkg/auth"
	"github.com/GlebRadaev/elaccess/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

var registerMetrics sync.Once

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type publisher interface {
	notify.Publisher
	Close() error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	pool      *pgxpool.Pool
	publisher publisher
	notifier  *notify.Notifier

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := a.build(ctx, cfg); err != nil {
		return err
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.srv.RegistrationService.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// build wires storage, messaging and services for cfg.
func (a *Application) build(ctx context.Context, cfg *config.Config) error {
	cat, err := catalog.New()
	if err != nil {
		return fmt.Errorf("can't load catalog: %w", err)
	}

	a.cfg = cfg
	if cfg.Database != "" {
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			pool.Close()
			return fmt.Errorf("can't run migrations: %w", err)
		}
		a.pool = pool
		a.repo = repo.New(pg.New(pool))
	} else {
		zap.L().Warn("no database configured, preferences are kept in memory")
		a.repo = repo.New(nil)
	}

	if len(cfg.KafkaBrokers) > 0 {
		a.publisher = kafka.NewProducer(cfg.KafkaBrokers, cfg.ReceiptTopic)
	} else {
		zap.L().Warn("no kafka brokers configured, receipt events are only logged")
		a.publisher = kafka.LogPublisher{Topic: cfg.ReceiptTopic}
	}
	a.notifier = notify.New(a.publisher, cfg.NotifyWorkers)

	registerMetrics.Do(func() {
		metrics.Register(prometheus.DefaultRegisterer)
	})

	tokens := auth.NewJWTService(cfg.SessionSecret)
	a.srv = service.New(a.repo, cat, registrationConfig(cfg), tokens, a.notifier)
	a.api = handlers.New(a.srv, tokens)
	zap.L().Info("catalog loaded", zap.Int("version", cat.Version()))
	return nil
}

func registrationConfig(cfg *config.Config) registrationservice.Config {
	w := wizard.DefaultConfig()
	w.PaymentWindow = cfg.PaymentWindow
	w.ProcessingDuration = cfg.ProcessingDuration
	w.ProcessingTick = cfg.ProcessingTick
	w.RequireAddress = cfg.RequireAddress
	return registrationservice.Config{
		Wizard:        w,
		SessionTTL:    cfg.SessionTTL,
		SweepInterval: cfg.SweepInterval,
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// close releases everything build acquired. Sessions go first so no
// receipt is issued after the notifier stops.
func (a *Application) close() {
	a.srv.RegistrationService.Close()
	a.notifier.Close()
	if err := a.publisher.Close(); err != nil {
		zap.L().Error("can't close event publisher", zap.Error(err))
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
