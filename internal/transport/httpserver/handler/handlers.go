package handler

import (
	"context"

	eventdomain "rentfolio-go/internal/domain/event"
	maintenancedomain "rentfolio-go/internal/domain/maintenance"
	marketdomain "rentfolio-go/internal/domain/market"
	propertydomain "rentfolio-go/internal/domain/property"
	tenantdomain "rentfolio-go/internal/domain/tenant"
	"rentfolio-go/internal/scraper"
	"rentfolio-go/pkg/logger"
)

type Handlers struct {
	Properties  *propertydomain.Service
	Tenants     *tenantdomain.Service
	Events      *eventdomain.Service
	Maintenance *maintenancedomain.Service
	Market      *marketdomain.Service
	Scraper     *scraper.Service

	scrapeAsync bool
	dbPing      func(context.Context) error
	log         logger.Logger
}

func New(
	properties *propertydomain.Service,
	tenants *tenantdomain.Service,
	events *eventdomain.Service,
	maintenance *maintenancedomain.Service,
	market *marketdomain.Service,
	scraperService *scraper.Service,
	scrapeAsync bool,
	dbPing func(context.Context) error,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Properties:  properties,
		Tenants:     tenants,
		Events:      events,
		Maintenance: maintenance,
		Market:      market,
		Scraper:     scraperService,
		scrapeAsync: scrapeAsync,
		dbPing:      dbPing,
		log:         log,
	}
}
