package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/auth"
	"github.com/MrSnakeDoc/linkhub/internal/config"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/linkapply"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/navigation"
	"github.com/MrSnakeDoc/linkhub/internal/redis"
	"github.com/MrSnakeDoc/linkhub/internal/scheduler"
	"github.com/MrSnakeDoc/linkhub/internal/session"
	"github.com/MrSnakeDoc/linkhub/internal/sources/homepage"
	"github.com/MrSnakeDoc/linkhub/internal/store"
	"github.com/MrSnakeDoc/linkhub/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/linkhub/internal/store/redis"
	"github.com/MrSnakeDoc/linkhub/internal/utils"
	"github.com/MrSnakeDoc/linkhub/internal/version"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	backend *backend
	seeder  *scheduler.Seeder
	janitor *scheduler.Janitor
}

// backend is the opened key-value store plus what it owns.
type backend struct {
	kv     store.KV
	closer io.Closer     // redis client, nil for memory
	memory *memory.Store // set for the memory backend only
}

// openBackend connects the configured store. The redis backend fails fast
// once the connector's retry budget is spent.
func openBackend(cfg *config.Config, log logger.Logger) (*backend, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Warn("using in-memory store, data is lost on restart")
		mem := memory.New()
		return &backend{kv: mem, memory: mem}, nil

	case config.BackendRedis:
		client, err := redis.New(redis.OptionsFromConfig(cfg), log)
		if err != nil {
			return nil, err
		}
		return &backend{kv: redisstore.NewStore(client, cfg.KeyPrefix), closer: client}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// build wires every component on top of an opened backend.
// trustedProxies is nil unless LINKHUB_TRUST_PROXY is set, so proxy IP
// headers are ignored by default.
func trustedProxies(cfg *config.Config) *utils.IPMatcher {
	if !cfg.TrustProxy {
		return nil
	}
	return utils.NewIPMatcher(cfg.TrustedProxies)
}

func build(cfg *config.Config, log logger.Logger, b *backend) (*App, error) {
	password, err := auth.NewPassword(cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		return nil, err
	}

	documents := navigation.NewStore(b.kv, log)

	d := deps.Deps{
		Logger:            log,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		SiteTitle:         cfg.SiteTitle,
		RequestTimeout:    cfg.RequestTimeout,
		AllowedHosts:      cfg.AllowedHosts,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustedProxies:    trustedProxies(cfg),
		ApplyBurst:        cfg.ApplyBurst,
		ApplyRefillPerMin: cfg.ApplyRefillPerMin,
		StoreBackend:      cfg.StoreBackend,
		Store:             b.kv,
		Password:          password,
		Sessions:          session.NewStore(b.kv, log, nil),
		Documents:         documents,
		Applications:      linkapply.NewStore(b.kv, documents, log, nil),
	}

	a := &App{
		cfg:     cfg,
		logger:  log,
		server:  httpserver.New(cfg.ListenPort, d),
		backend: b,
		seeder: scheduler.NewSeeder(
			homepage.NewLoader(cfg.HomepageServicesFile, cfg.HomepageBookmarksFile),
			documents,
			log,
		),
	}
	if b.memory != nil {
		a.janitor = scheduler.NewJanitor(b.memory, log, cfg.SweepInterval)
	}
	return a, nil
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	b, err := openBackend(cfg, loggerClient)
	if err != nil {
		loggerClient.Error("failed to open store", logger.String("backend", cfg.StoreBackend), logger.Error(err))
		os.Exit(1)
	}

	a, err := build(cfg, loggerClient, b)
	if err != nil {
		loggerClient.Error("failed to initialize", logger.Error(err))
		os.Exit(1)
	}
	return a
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting linkhub %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("linkhub %s (commit=%s, built=%s, go=%s, store=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion, a.cfg.StoreBackend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// An empty directory is still servable, so a failed import is not fatal.
	if _, err := a.seeder.Run(ctx); err != nil {
		a.logger.Error("first-run import failed", logger.Error(err))
	}

	if a.janitor != nil {
		a.janitor.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.janitor != nil {
		a.janitor.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.backend.closer != nil {
		utils.CloseLogged(a.backend.closer, "redis", a.logger)
	}

	a.logger.Info("✅ linkhub stopped cleanly")
	return nil
}
