package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	marketdomain "rentfolio-go/internal/domain/market"
)

type createMarketDataRequest struct {
	Location           string   `json:"location"`
	MedianPrice        *float64 `json:"median_price"`
	AveragePrice       *float64 `json:"average_price"`
	InventoryCount     *int     `json:"inventory_count"`
	DaysOnMarket       *float64 `json:"days_on_market"`
	PriceChangePercent *float64 `json:"price_change_percent"`
	DataSource         *string  `json:"data_source"`
	RecordedDate       *string  `json:"recorded_date"`
}

type marketDataResponse struct {
	ID                 int64     `json:"id"`
	Location           string    `json:"location"`
	MedianPrice        *float64  `json:"median_price"`
	AveragePrice       *float64  `json:"average_price"`
	InventoryCount     *int      `json:"inventory_count"`
	DaysOnMarket       *float64  `json:"days_on_market"`
	PriceChangePercent *float64  `json:"price_change_percent"`
	DataSource         string    `json:"data_source"`
	RecordedDate       string    `json:"recorded_date"`
	CreatedAt          time.Time `json:"created_at"`
}

type trendPointResponse struct {
	Date           time.Time `json:"date"`
	MedianPrice    *float64  `json:"median_price"`
	AveragePrice   *float64  `json:"average_price"`
	InventoryCount *int      `json:"inventory_count"`
}

type trendGroupResponse struct {
	Location   string               `json:"location"`
	TimeSeries []trendPointResponse `json:"time_series"`
}

type analyticsResponse struct {
	TotalProperties int64                `json:"total_properties"`
	TotalValue      float64              `json:"total_value"`
	AverageRent     float64              `json:"average_rent"`
	OccupancyRate   float64              `json:"occupancy_rate"`
	MarketTrends    []trendGroupResponse `json:"market_trends"`
}

type scrapeResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (h *Handlers) ListMarketData(w http.ResponseWriter, r *http.Request) {
	location := stringParam(r.URL.Query().Get("location"))

	items, err := h.Market.ListData(r.Context(), marketdomain.ListFilter{Location: location})
	if err != nil {
		h.log.InternalError("market.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]marketDataResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMarketDataResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateMarketData(w http.ResponseWriter, r *http.Request) {
	var req createMarketDataRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Location) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "location is required")
		return
	}
	if req.DataSource == nil || strings.TrimSpace(*req.DataSource) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "data_source is required")
		return
	}

	recordedDate := ""
	if req.RecordedDate != nil {
		recordedDate = *req.RecordedDate
	}

	item, err := h.Market.CreateData(r.Context(), marketdomain.CreateInput{
		Location:           req.Location,
		MedianPrice:        req.MedianPrice,
		AveragePrice:       req.AveragePrice,
		InventoryCount:     req.InventoryCount,
		DaysOnMarket:       req.DaysOnMarket,
		PriceChangePercent: req.PriceChangePercent,
		DataSource:         *req.DataSource,
		RecordedDate:       recordedDate,
	})
	if err != nil {
		h.log.InternalError("market.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toMarketDataResponse(*item))
}

func (h *Handlers) MarketTrends(w http.ResponseWriter, r *http.Request) {
	location := stringParam(r.URL.Query().Get("location"))

	groups, err := h.Market.Trends(r.Context(), location)
	if err != nil {
		h.log.InternalError("market.trends: trends failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTrendGroupResponses(groups))
}

func (h *Handlers) MarketAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.Market.Analytics(r.Context())
	if err != nil {
		h.log.InternalError("market.analytics: analytics failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, analyticsResponse{
		TotalProperties: analytics.TotalProperties,
		TotalValue:      analytics.TotalValue,
		AverageRent:     analytics.AverageRent,
		OccupancyRate:   analytics.OccupancyRate,
		MarketTrends:    toTrendGroupResponses(analytics.MarketTrends),
	})
}

// TriggerScrape runs the market scraper. In async mode the request returns
// immediately and failures only surface in the log.
func (h *Handlers) TriggerScrape(w http.ResponseWriter, r *http.Request) {
	if h.scrapeAsync {
		go func() {
			if _, err := h.Scraper.Refresh(context.Background()); err != nil {
				h.log.InternalError("market.scrape: background refresh failed", err)
			}
		}()
		writeJSON(w, http.StatusAccepted, scrapeResponse{Message: "scrape started"})
		return
	}

	count, err := h.Scraper.Refresh(r.Context())
	if err != nil {
		h.log.InternalError("market.scrape: refresh failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, scrapeResponse{
		Message: "market data scraped successfully",
		Count:   count,
	})
}

func toMarketDataResponse(item marketdomain.DataPoint) marketDataResponse {
	return marketDataResponse{
		ID:                 item.ID,
		Location:           item.Location,
		MedianPrice:        item.MedianPrice,
		AveragePrice:       item.AveragePrice,
		InventoryCount:     item.InventoryCount,
		DaysOnMarket:       item.DaysOnMarket,
		PriceChangePercent: item.PriceChangePercent,
		DataSource:         item.DataSource,
		RecordedDate:       item.RecordedDate,
		CreatedAt:          item.CreatedAt,
	}
}

func toTrendGroupResponses(groups []marketdomain.TrendGroup) []trendGroupResponse {
	response := make([]trendGroupResponse, 0, len(groups))
	for _, group := range groups {
		points := make([]trendPointResponse, 0, len(group.TimeSeries))
		for _, point := range group.TimeSeries {
			points = append(points, trendPointResponse{
				Date:           point.Date,
				MedianPrice:    point.MedianPrice,
				AveragePrice:   point.AveragePrice,
				InventoryCount: point.InventoryCount,
			})
		}
		response = append(response, trendGroupResponse{
			Location:   group.Location,
			TimeSeries: points,
		})
	}
	return response
}
