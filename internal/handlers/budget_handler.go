package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "money/internal/errors"
	"money/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the request payload for setting the budget.
type SetBudgetRequest struct {
	Total *float64 `json:"total" binding:"required"`
}

// BudgetResponse represents the budget in responses.
type BudgetResponse struct {
	Total float64 `json:"total"`
}

// GetBudget returns the current household budget.
// @Summary     Get the budget
// @Description Get the household budget total. Returns {"total":0} when no budget has been stored yet.
// @Tags        budget
// @Produce     json
// @Success     200 {object} BudgetResponse "Current budget"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.budgetService.GetBudget()
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := BudgetResponse{Total: 0}
	if budget != nil {
		resp.Total = budget.Total
	}
	c.JSON(http.StatusOK, resp)
}

// SetBudget updates the household budget total.
// @Summary     Set the budget
// @Description Update the household budget total in place, creating the row on first write. The response echoes the request's total.
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body SetBudgetRequest true "Budget total"
// @Success     200 {object} BudgetResponse "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	if _, err := h.budgetService.SetBudget(*req.Total); err != nil {
		respondWithError(c, err)
		return
	}

	// Echo the request value rather than re-reading from storage; the
	// existing client relies on seeing its input back unchanged.
	c.JSON(http.StatusOK, BudgetResponse{Total: *req.Total})
}
