package handler

import (
	"net/http"

	"spinwheel-service/internal/model"

	"github.com/gin-gonic/gin"
)

// GetEligibility
// @Summary Get spin eligibility
// @Description Returns a fresh per-wheel eligibility snapshot for the caller
// @Tags eligibility
// @Produce json
// @Param X-User-ID header int true "Resolved user ID"
// @Success 200 {object} model.EligibilityResponse
// @Router /eligibility [get]
func (h *Handler) GetEligibility(c *gin.Context) {
	principal := principalFrom(c)

	snapshots, err := h.eligibilityService.ForUser(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.EligibilityResponse{Wheels: snapshots})
}
