package commands

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/handler"
	"github.com/iliyamo/venue-booking/internal/middleware"
	"github.com/iliyamo/venue-booking/internal/printer"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/router"
	"github.com/iliyamo/venue-booking/internal/service"
	"github.com/iliyamo/venue-booking/internal/session"
	"github.com/iliyamo/venue-booking/internal/view"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := newLogger(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.Database.User, cfg.Database.Pass, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	if err != nil {
		return printer.Error("Database unreachable", err.Error())
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		applied, err := database.Migrate(ctx, db)
		if err != nil {
			return printer.Error("Migration failed", err.Error())
		}
		for _, m := range applied {
			log.Info("applied migration", "name", m)
		}
	}

	rdb, err := config.NewRedisClient(config.LoadRedisConfig())
	var flash session.FlashStore
	if err != nil {
		log.Warn("redis unavailable, using in-process flashes and no rate limiting", "error", err)
		flash = session.NewMemoryFlashStore()
	} else {
		defer rdb.Close()
		flash = session.NewRedisFlashStore(rdb, 10*time.Minute)
	}

	e := newServer(cfg, log, db, rdb, flash)
	addr := ":" + cfg.Port
	log.Info("listening", "addr", addr, "env", cfg.Env)

	errc := make(chan error, 1)
	go func() { errc <- e.Start(addr) }()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return printer.Error("Server stopped", err.Error())
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return printer.Error("Shutdown failed", err.Error())
	}
	printer.Success("server stopped")
	return nil
}

// newServer assembles the echo instance. rdb may be nil.
func newServer(cfg config.Config, log hclog.Logger, db *sql.DB, rdb *redis.Client, flash session.FlashStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = view.MustNew()

	var events handler.EventPublisher = service.NopPublisher{}
	if ec := config.LoadEventsConfig(); ec.Enabled {
		events = service.NewPublisher(ec.URL, ec.Queue, log.Named("events"))
	}

	base := handler.NewBase(flash, events, log.Named("http"))
	e.HTTPErrorHandler = base.HTTPErrorHandler

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log.Named("http")))
	e.Use(echomw.Recover())
	e.Use(middleware.Session(middleware.SessionConfig{
		Secret: cfg.SessionSecret,
		Secure: cfg.IsProd(),
		Logger: log.Named("session"),
	}))

	venues := repository.NewVenueRepo(db, nil)
	artists := repository.NewArtistRepo(db, nil)
	shows := repository.NewShowRepo(db)

	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log.Named("ratelimit"))
	router.Register(e, &base,
		handler.NewVenueHandler(withLog(base, log, "venues"), venues),
		handler.NewArtistHandler(withLog(base, log, "artists"), artists),
		handler.NewShowHandler(withLog(base, log, "shows"), shows, venues, artists),
		limit)
	return e
}

func withLog(b handler.Base, log hclog.Logger, name string) handler.Base {
	b.Log = log.Named(name)
	return b
}
