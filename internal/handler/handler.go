package handler

import (
	"errors"
	"net/http"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	walletService      service.WalletService
	purchaseService    service.PurchaseService
	reconcileService   service.ReconcileService
	eligibilityService service.EligibilityService
	spinService        service.SpinService
	wheelService       service.WheelService
	logger             zerolog.Logger
}

func NewHandler(
	walletService service.WalletService,
	purchaseService service.PurchaseService,
	reconcileService service.ReconcileService,
	eligibilityService service.EligibilityService,
	spinService service.SpinService,
	wheelService service.WheelService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		walletService:      walletService,
		purchaseService:    purchaseService,
		reconcileService:   reconcileService,
		eligibilityService: eligibilityService,
		spinService:        spinService,
		wheelService:       wheelService,
		logger:             logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	// The webhook is authenticated by signature verification upstream and
	// carries no user principal.
	v1.POST("/webhooks/payment", h.PaymentWebhook)

	v1.GET("/wheels", h.ListWheels)

	authed := v1.Group("")
	authed.Use(PrincipalMiddleware())
	authed.POST("/purchases", h.CreatePurchase)
	authed.GET("/purchases", h.ListPurchases)
	authed.GET("/eligibility", h.GetEligibility)
	authed.POST("/spins", h.ExecuteSpin)
	authed.GET("/spins", h.ListSpins)
	authed.GET("/wallet", h.GetWallet)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidQuantity):
		status = http.StatusBadRequest
		code = "INVALID_QUANTITY"
	case errors.Is(err, model.ErrInvalidMethod):
		status = http.StatusBadRequest
		code = "INVALID_PAYMENT_METHOD"
	case errors.Is(err, model.ErrInvalidOutcome):
		status = http.StatusBadRequest
		code = "INVALID_OUTCOME"
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrPaymentDeclined):
		status = http.StatusPaymentRequired
		code = "PAYMENT_DECLINED"
	case errors.Is(err, model.ErrWheelUnavailable):
		status = http.StatusConflict
		code = "WHEEL_UNAVAILABLE"
	case errors.Is(err, model.ErrNotEligible):
		status = http.StatusForbidden
		code = "NOT_ELIGIBLE"
	case errors.Is(err, model.ErrCreditExhausted):
		status = http.StatusConflict
		code = "CREDIT_EXHAUSTED"
	case errors.Is(err, model.ErrPurchaseMismatch):
		status = http.StatusForbidden
		code = "PURCHASE_MISMATCH"
	case errors.Is(err, model.ErrInvalidStateTransition):
		status = http.StatusConflict
		code = "INVALID_STATE_TRANSITION"
	case errors.Is(err, model.ErrWalletNotFound):
		status = http.StatusNotFound
		code = "WALLET_NOT_FOUND"
	case errors.Is(err, model.ErrWheelNotFound):
		status = http.StatusNotFound
		code = "WHEEL_NOT_FOUND"
	case errors.Is(err, model.ErrPurchaseNotFound):
		status = http.StatusNotFound
		code = "PURCHASE_NOT_FOUND"
	case errors.Is(err, model.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
		code = "STORAGE_UNAVAILABLE"
		resp.Error = "service temporarily unavailable"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}
