package handler

import (
	"net/http"
	"strconv"

	"spinwheel-service/internal/model"

	"github.com/gin-gonic/gin"
)

// ExecuteSpin
// @Summary Execute a spin
// @Description Spins a wheel, consuming one purchased credit or one free spin
// @Tags spins
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Resolved user ID"
// @Param spin body model.SpinRequest true "Spin details"
// @Success 201 {object} model.SpinResponse "Prize awarded"
// @Failure 403 {object} model.ErrorResponse "Not eligible"
// @Failure 409 {object} model.ErrorResponse "Credit exhausted or wheel unavailable"
// @Router /spins [post]
func (h *Handler) ExecuteSpin(c *gin.Context) {
	principal := principalFrom(c)

	var req model.SpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.spinService.Spin(c.Request.Context(), principal.UserID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListSpins
// @Summary List spins
// @Description Returns a paginated list of the caller's spin history
// @Tags spins
// @Produce json
// @Param X-User-ID header int true "Resolved user ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.SpinListResponse
// @Router /spins [get]
func (h *Handler) ListSpins(c *gin.Context) {
	principal := principalFrom(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	spins, err := h.spinService.ListByUser(c.Request.Context(), principal.UserID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SpinListResponse{
		Spins:  spins,
		Total:  len(spins),
		Limit:  limit,
		Offset: offset,
	})
}
