//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

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

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.EnsureSchema(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := logger.New(io.Discard, slog.LevelError, "text")
	marketRepo := marketrepo.NewGorm(gormDB)

	handlers := handler.New(
		propertydomain.NewService(propertyrepo.NewGorm(gormDB)),
		tenantdomain.NewService(tenantrepo.NewGorm(gormDB)),
		eventdomain.NewService(eventrepo.NewGorm(gormDB)),
		maintenancedomain.NewService(maintenancerepo.NewGorm(gormDB)),
		marketdomain.NewService(marketRepo),
		scraper.New(marketRepo, log),
		false,
		db.Pinger(gormDB),
		log,
	)

	cfg := config.Config{HTTPPort: "0", AllowedOrigins: []string{"http://localhost:5173"}}
	server := httptest.NewServer(httpserver.NewRouter(cfg, handlers))
	t.Cleanup(server.Close)

	return &testEnv{server: server, db: gormDB}
}

func (env *testEnv) request(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, env.server.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp.StatusCode, decoded
}

func (env *testEnv) requestList(t *testing.T, path string) []map[string]any {
	t.Helper()

	resp, err := http.Get(env.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", path, resp.StatusCode)
	}

	var decoded []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return decoded
}

func TestPortfolioFlow(t *testing.T) {
	env := setupE2E(t)

	status, property := env.request(t, http.MethodPost, "/api/properties", `{
		"title": "Cedar Fourplex",
		"address": "88 Cedar Ave",
		"city": "Eugene",
		"state": "OR",
		"zip_code": "97401",
		"property_type": "multifamily",
		"current_value": 600000,
		"monthly_rent": 1850,
		"status": "occupied"
	}`)
	if status != http.StatusCreated {
		t.Fatalf("create property: status %d", status)
	}
	propertyID := int64(property["id"].(float64))

	status, _ = env.request(t, http.MethodPost, "/api/tenants", fmt.Sprintf(`{
		"property_id": %d,
		"first_name": "Jordan",
		"last_name": "Reyes",
		"lease_start": "2025-01-01T00:00:00Z",
		"lease_end": "2025-12-31T00:00:00Z",
		"monthly_rent": 1850
	}`, propertyID))
	if status != http.StatusCreated {
		t.Fatalf("create tenant: status %d", status)
	}

	status, record := env.request(t, http.MethodPost, "/api/maintenance", fmt.Sprintf(`{
		"property_id": %d,
		"title": "Fix gutter",
		"priority": "high"
	}`, propertyID))
	if status != http.StatusCreated {
		t.Fatalf("create maintenance: status %d", status)
	}
	if record["status"] != "pending" {
		t.Fatalf("maintenance status = %v, want pending", record["status"])
	}

	status, analytics := env.request(t, http.MethodGet, "/api/market/analytics", "")
	if status != http.StatusOK {
		t.Fatalf("analytics: status %d", status)
	}
	if analytics["occupancy_rate"].(float64) != 100.0 {
		t.Fatalf("occupancy_rate = %v, want 100", analytics["occupancy_rate"])
	}

	// Deleting the property takes its tenants and maintenance records along.
	status, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/properties/%d", propertyID), "")
	if status != http.StatusNoContent {
		t.Fatalf("delete property: status %d", status)
	}

	if tenants := env.requestList(t, "/api/tenants"); len(tenants) != 0 {
		t.Fatalf("tenants after cascade = %d, want 0", len(tenants))
	}
	if records := env.requestList(t, "/api/maintenance"); len(records) != 0 {
		t.Fatalf("maintenance after cascade = %d, want 0", len(records))
	}
}

func TestMarketDataFlow(t *testing.T) {
	env := setupE2E(t)

	status, scraped := env.request(t, http.MethodPost, "/api/market/scrape", "")
	if status != http.StatusOK {
		t.Fatalf("scrape: status %d", status)
	}
	if scraped["count"].(float64) != 3 {
		t.Fatalf("scrape count = %v, want 3", scraped["count"])
	}

	all := env.requestList(t, "/api/market-data")
	if len(all) != 3 {
		t.Fatalf("market data rows = %d, want 3", len(all))
	}

	scoped := env.requestList(t, "/api/market-data?location=Austin%2C+TX")
	if len(scoped) != 1 {
		t.Fatalf("filtered rows = %d, want 1", len(scoped))
	}

	status, created := env.request(t, http.MethodPost, "/api/market-data", `{
		"location": "Austin, TX",
		"median_price": 560000,
		"data_source": "manual"
	}`)
	if status != http.StatusCreated {
		t.Fatalf("create market data: status %d", status)
	}
	if created["recorded_date"] == "" {
		t.Fatal("recorded_date not defaulted")
	}

	trends := env.requestList(t, "/api/market/trends?location=Austin%2C+TX")
	if len(trends) != 1 {
		t.Fatalf("trend groups = %d, want 1", len(trends))
	}
	series := trends[0]["time_series"].([]any)
	if len(series) != 2 {
		t.Fatalf("time series points = %d, want 2", len(series))
	}
}
