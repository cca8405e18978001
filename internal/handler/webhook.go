package handler

import (
	"net/http"

	"spinwheel-service/internal/model"

	"github.com/gin-gonic/gin"
)

// PaymentWebhook
// @Summary Payment provider webhook
// @Description Applies a verified payment outcome to its pending purchase; duplicate deliveries are acknowledged
// @Tags webhooks
// @Accept json
// @Param event body model.WebhookRequest true "Verified payment event"
// @Success 204 "Acknowledged"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Unknown reference"
// @Router /webhooks/payment [post]
func (h *Handler) PaymentWebhook(c *gin.Context) {
	var req model.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	outcome, err := model.ParseWebhookOutcome(req.Outcome)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.reconcileService.Reconcile(c.Request.Context(), req.Reference, outcome); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
