package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "money/internal/errors"
	"money/internal/services"
)

// ItemHandler handles item-related requests.
type ItemHandler struct {
	itemService services.ItemServicer
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService services.ItemServicer) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest represents the request payload for recording a purchase.
type CreateItemRequest struct {
	Name       string   `json:"name" binding:"required,notblank"`
	Price      *float64 `json:"price" binding:"required"`
	CategoryID *uint    `json:"categoryId" binding:"required"`
}

// GetItems returns all items with their categories embedded.
// @Summary     List items
// @Description Get all recorded purchases, each with its category eagerly attached.
// @Tags        items
// @Produce     json
// @Success     200 {array} models.Item "List of items"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items [get]
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.itemService.GetItems()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem records a new purchase.
// @Summary     Create an item
// @Description Record a purchase under a category. The response carries the stored row with its category joined, matching the list shape.
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       request body CreateItemRequest true "Item details"
// @Success     200 {object} models.Item "Created item with category"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	item, err := h.itemService.CreateItem(req.Name, *req.Price, *req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem deletes an item by ID.
// @Summary     Delete an item
// @Description Delete a purchase by ID. Deleting an absent ID is a no-op success.
// @Tags        items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} SuccessResponse "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.itemService.DeleteItem(itemID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
