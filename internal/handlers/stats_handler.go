package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"money/internal/services"
	"money/internal/stats"
)

// StatsHandler serves spending statistics derived from the raw item list.
type StatsHandler struct {
	budgetService services.BudgetServicer
	itemService   services.ItemServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(budgetService services.BudgetServicer, itemService services.ItemServicer) *StatsHandler {
	return &StatsHandler{budgetService: budgetService, itemService: itemService}
}

// StatisticsResponse represents the derived spending aggregates.
type StatisticsResponse struct {
	Budget     float64            `json:"budget"`
	TotalSpent float64            `json:"totalSpent"`
	Remaining  float64            `json:"remaining"`
	ByCategory map[string]float64 `json:"byCategory"`
	ByMonth    map[string]float64 `json:"byMonth"`
}

// GetStatistics returns spending aggregates.
// @Summary     Get statistics
// @Description Get totals, per-category and per-month breakdowns. Recomputed from items and budget on every request; nothing derived is persisted.
// @Tags        statistics
// @Produce     json
// @Success     200 {object} StatisticsResponse "Spending statistics"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /statistics [get]
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	items, err := h.itemService.GetItems()
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget()
	if err != nil {
		respondWithError(c, err)
		return
	}

	var budgetTotal float64
	if budget != nil {
		budgetTotal = budget.Total
	}

	c.JSON(http.StatusOK, StatisticsResponse{
		Budget:     budgetTotal,
		TotalSpent: stats.TotalSpent(items),
		Remaining:  stats.Remaining(budgetTotal, items),
		ByCategory: stats.ByCategory(items),
		ByMonth:    stats.ByMonth(items),
	})
}
