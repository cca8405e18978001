package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetWallet
// @Summary Get wallet balance
// @Description Returns the caller's current wallet balance
// @Tags wallet
// @Produce json
// @Param X-User-ID header int true "Resolved user ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallet [get]
func (h *Handler) GetWallet(c *gin.Context) {
	principal := principalFrom(c)

	resp, err := h.walletService.Balance(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
