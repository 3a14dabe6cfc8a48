// Package main Roten API
// @title Roten API
// @version 1.0
// @description 정부지원사업 통합 검색 API - aggregated search over Korean government support-program announcements
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	_ "github.com/rotenkr/roten-api/docs"
	"github.com/rotenkr/roten-api/internal/catalog"
	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/router"
	"github.com/rotenkr/roten-api/internal/server"
	"github.com/rotenkr/roten-api/internal/source"
	"github.com/rotenkr/roten-api/internal/source/mem"
	"github.com/rotenkr/roten-api/internal/source/pg"
	pkgserver "github.com/rotenkr/roten-api/pkg/server"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg).
		SetupMiddlewares().
		SetupOpenApi()

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Roten API is running")
	})

	appSettings := NewAppConfig()
	settings, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	fetcher, healthChecker, cleanup, err := buildFetcher(s, settings)
	if err != nil {
		slog.Error("Failed to create source fetchers", "error", err)
		os.Exit(1)
		return
	}
	s.SetupHealthChecks(healthChecker)

	cat := catalog.New(fetcher, settings.Rules)

	searchRouter := router.NewSearchRouter(s.Echo, cat)
	searchRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		cleanup()
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func buildFetcher(s *server.Server, settings *Settings) (catalog.AllFetcher, pkgserver.HealthChecker, func(), error) {
	switch settings.Backend {
	case BackendMem:
		// Empty in-memory registries; useful for smoke tests without a store.
		biz := mem.NewFetcher(domain.SourceBizInfo, nil)
		ks := mem.NewFetcher(domain.SourceKStartup, nil)
		return source.NewMultiFetcher(biz, ks), pkgserver.NewOkHealthChecker(), func() {}, nil
	default:
		pool, err := pg.NewConnectionPool(s.Context(), pg.PoolConfig{ConnStr: settings.DatabaseURL})
		if err != nil {
			return nil, nil, nil, err
		}
		biz := pg.NewBizInfoFetcher(pool, settings.PageSize)
		ks := pg.NewKStartupFetcher(pool, settings.PageSize)
		return source.NewMultiFetcher(biz, ks), pg.NewHealthChecker(pool), pool.Close, nil
	}
}
