package handler

import (
	"net/http"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/cardbook/cardbook-backend/internal/service"
	"github.com/cardbook/cardbook-backend/internal/store"
	"github.com/cardbook/cardbook-backend/internal/util"
	"github.com/cardbook/cardbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler serves the derived KPI views and the demo-data seeding
// endpoint.
type DashboardHandler struct {
	store     *store.ExpenseStore
	kpi       *service.KPIService
	publisher websocket.EventPublisher
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(store *store.ExpenseStore, kpi *service.KPIService, publisher websocket.EventPublisher) *DashboardHandler {
	return &DashboardHandler{store: store, kpi: kpi, publisher: publisher}
}

// SummaryDisplay carries the ko-KR renderings of the headline figures.
type SummaryDisplay struct {
	Budget         string `json:"budget"`
	TotalSpent     string `json:"totalSpent"`
	TotalBudget    string `json:"totalBudget"`
	TotalRemaining string `json:"totalRemaining"`
}

// SummaryResponse pairs the raw KPI figures with display strings and the
// top-spender budget table.
type SummaryResponse struct {
	domain.KPISummary
	Display             SummaryDisplay             `json:"display"`
	PersonBudgetSummary []domain.PersonBudgetEntry `json:"personBudgetSummary"`
}

// InitializeResponse reports whether seeding actually happened
type InitializeResponse struct {
	Seeded bool `json:"seeded"`
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary := h.kpi.Summary()
	return c.JSON(http.StatusOK, SummaryResponse{
		KPISummary: summary,
		Display: SummaryDisplay{
			Budget:         util.FormatKRW(summary.Budget),
			TotalSpent:     util.FormatKRW(summary.TotalSpent),
			TotalBudget:    util.FormatKRW(summary.TotalBudget),
			TotalRemaining: util.FormatKRW(summary.TotalRemaining),
		},
		PersonBudgetSummary: h.kpi.PersonBudgetSummary(),
	})
}

// GetPersonSpending handles GET /api/v1/dashboard/person-spending
func (h *DashboardHandler) GetPersonSpending(c echo.Context) error {
	return c.JSON(http.StatusOK, h.kpi.PersonSpending())
}

// Initialize handles POST /api/v1/initialize. Seeding only happens when
// transactions, people and cards are all empty, so repeat calls are safe.
func (h *DashboardHandler) Initialize(c echo.Context) error {
	seeded := h.store.InitializeData()
	if seeded {
		log.Info().Msg("Demo dataset seeded")
		h.publisher.Publish(websocket.StoreSeeded(nil))
	}
	return c.JSON(http.StatusOK, InitializeResponse{Seeded: seeded})
}
