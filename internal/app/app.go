package app

import (
	"net/http"

	"gorm.io/gorm"

	"rentfolio-go/internal/config"
	"rentfolio-go/internal/db"
	eventdomain "rentfolio-go/internal/domain/event"
	maintenancedomain "rentfolio-go/internal/domain/maintenance"
	marketdomain "rentfolio-go/internal/domain/market"
	propertydomain "rentfolio-go/internal/domain/property"
	tenantdomain "rentfolio-go/internal/domain/tenant"
	eventrepo "rentfolio-go/internal/repository/event"
	maintenancerepo "rentfolio-go/internal/repository/maintenance"
	marketrepo "rentfolio-go/internal/repository/market"
	propertyrepo "rentfolio-go/internal/repository/property"
	tenantrepo "rentfolio-go/internal/repository/tenant"
	"rentfolio-go/internal/scraper"
	"rentfolio-go/internal/transport/httpserver"
	"rentfolio-go/internal/transport/httpserver/handler"
	"rentfolio-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load(log)

	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: migrating schema")
	if err := db.EnsureSchema(dbConn); err != nil {
		return nil, err
	}

	properties := propertydomain.NewService(propertyrepo.NewGorm(dbConn))
	tenants := tenantdomain.NewService(tenantrepo.NewGorm(dbConn))
	events := eventdomain.NewService(eventrepo.NewGorm(dbConn))
	maintenance := maintenancedomain.NewService(maintenancerepo.NewGorm(dbConn))

	marketRepo := marketrepo.NewGorm(dbConn)
	market := marketdomain.NewService(marketRepo)
	scraperService := scraper.New(marketRepo, log)

	handlers := handler.New(properties, tenants, events, maintenance, market, scraperService, cfg.ScrapeAsync, db.Pinger(dbConn), log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
