package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListWheels
// @Summary List active wheels
// @Description Returns the active wheel catalog with display chances
// @Tags wheels
// @Produce json
// @Success 200 {object} model.WheelListResponse
// @Router /wheels [get]
func (h *Handler) ListWheels(c *gin.Context) {
	resp, err := h.wheelService.Catalog(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
