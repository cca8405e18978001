package handler

import (
	"net/http"
	"strconv"

	"spinwheel-service/internal/model"

	"github.com/gin-gonic/gin"
)

// CreatePurchase
// @Summary Buy spin credits
// @Description Buys spin credits for a wheel, settled from the wallet or via an external provider
// @Tags purchases
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Resolved user ID"
// @Param purchase body model.PurchaseRequest true "Purchase details"
// @Success 201 {object} model.PurchaseResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 402 {object} model.ErrorResponse "Payment declined"
// @Failure 409 {object} model.ErrorResponse "Wheel unavailable"
// @Router /purchases [post]
func (h *Handler) CreatePurchase(c *gin.Context) {
	principal := principalFrom(c)

	var req model.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.purchaseService.Create(c.Request.Context(), principal.UserID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListPurchases
// @Summary List purchases
// @Description Returns a paginated list of the caller's purchases
// @Tags purchases
// @Produce json
// @Param X-User-ID header int true "Resolved user ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.PurchaseListResponse
// @Router /purchases [get]
func (h *Handler) ListPurchases(c *gin.Context) {
	principal := principalFrom(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	purchases, err := h.purchaseService.ListByUser(c.Request.Context(), principal.UserID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.PurchaseListResponse{
		Purchases: purchases,
		Total:     len(purchases),
		Limit:     limit,
		Offset:    offset,
	})
}
