package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	goredis "github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/clients/redis"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/db"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/modules/certgen"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/observability"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/assets"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Cache    *goredis.Cache

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	if err := pg.SeedDefaults(log); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres seed: %w", err)
	}
	theDB := pg.DB()

	assetSource := buildAssetSource(log, cfg)

	renderCfg, err := certgen.LoadRenderConfig(cfg.RenderConfigPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load render config: %w", err)
	}
	renderer, err := certgen.NewRenderer(log, renderCfg, assetSource)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init certificate renderer: %w", err)
	}

	// The render cache is optional: without Redis every render is computed
	// from scratch, which is correct, just slower.
	cache, err := goredis.NewCache(log)
	if err != nil {
		log.Warn("Redis unavailable, render caching disabled", "error", err)
		cache = nil
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, renderer, cache)
	handlerset := wireHandlers(log, serviceset)
	middleware := wireMiddleware(log, serviceset)
	router := wireRouter(cfg, handlerset, middleware)

	shutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	})

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Cache:    cache,

		otelShutdown: shutdown,
	}, nil
}

func buildAssetSource(log *logger.Logger, cfg Config) assets.Source {
	var gcs assets.Source
	if os.Getenv("GCS_ASSETS_ENABLED") == "true" {
		src, err := assets.NewGCSSource(context.Background(), log)
		if err != nil {
			log.Warn("GCS asset source unavailable, gs:// refs will fail", "error", err)
		} else {
			gcs = src
		}
	}
	return assets.New(log, cfg.AssetBaseDir, gcs)
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown", "error", err)
		}
	}
	if a.Cache != nil {
		a.Cache.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
