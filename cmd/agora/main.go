package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/Decentr-net/agora/internal/consumer/feed"
	"github.com/Decentr-net/agora/internal/genesis"
	"github.com/Decentr-net/agora/internal/server"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/service/impl"
	"github.com/Decentr-net/agora/internal/storage"
	"github.com/Decentr-net/agora/internal/storage/memory"
	"github.com/Decentr-net/agora/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	JWTSecret string `long:"jwt.secret" env:"JWT_SECRET" required:"true" description:"HS256 secret of bearer tokens"`

	Genesis string `long:"genesis" env:"GENESIS" description:"path to genesis imported when the ledger is empty"`

	Storage string `long:"storage" env:"STORAGE" default:"postgres" choice:"postgres" choice:"memory" description:"ledger storage"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	FeedInterval      time.Duration `long:"feed.interval" env:"FEED_INTERVAL" default:"500ms" description:"duration to be waited when event log has no new events"`
	FeedRetryInterval time.Duration `long:"feed.retry_interval" env:"FEED_RETRY_INTERVAL" default:"2s" description:"interval to be waited on error before retry"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Agora"
	parser.LongDescription = "Agora social ledger"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.WithField("storage", opts.Storage).WithField("port", opts.Port).Info("starting")

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          server.GetVersion(),
			ServerName:       "agora",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	s := mustGetStorage()
	svc := impl.New(s)

	if opts.Genesis != "" {
		mustImportGenesis(svc)
	}

	f := feed.New(s, opts.FeedInterval, opts.FeedRetryInterval)

	r := chi.NewMux()
	r.Get("/health", server.HealthHandler(
		5*time.Second,
		server.PingerFunc(func(ctx context.Context) error {
			_, err := svc.GetHeight(ctx)
			return err
		}),
		f,
	))
	r.Handle("/metrics", promhttp.Handler())
	server.SetupRouter(svc, f, r, opts.RequestTimeout, []byte(opts.JWTSecret))

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, gctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return f.Run(gctx)
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-gctx.Done():
		}

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to gracefully shutdown server")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustImportGenesis(svc service.Service) {
	g, err := genesis.Load(opts.Genesis)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load genesis")
	}

	switch err := genesis.Import(context.Background(), svc, g); {
	case err == nil:
		logrus.WithField("genesis", opts.Genesis).Info("genesis imported")
	case errors.Is(err, genesis.ErrNotEmpty):
		logrus.WithError(err).Info("skip genesis import")
	default:
		logrus.WithError(err).Fatal("failed to import genesis")
	}
}

func mustGetStorage() storage.Storage {
	if opts.Storage == "memory" {
		logrus.Warn("memory storage is used, the ledger will be lost on exit")
		return memory.New()
	}

	return postgres.New(mustGetDB())
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
