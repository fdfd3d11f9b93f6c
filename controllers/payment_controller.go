package controllers

import (
	"net/http"

	"github.com/Tanvi183/zap-shift-server/models"
	"github.com/Tanvi183/zap-shift-server/services"
	"github.com/gin-gonic/gin"
)

// PaymentController handles HTTP requests for the payment flow.
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(svc services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: svc}
}

// CreateCheckoutSession handles POST /create-checkout-session
func (pc *PaymentController) CreateCheckoutSession(ctx *gin.Context) {
	var req models.CreateCheckoutSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	url, svcErr := pc.paymentService.CreateCheckoutSession(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

// PaymentSuccess handles PATCH /payment-success?session_id=
//
// Failed validation outcomes (missing session id, unpaid session, ...) are
// returned as {success:false, message} with HTTP 200; only unexpected
// store/processor faults produce a 500.
func (pc *PaymentController) PaymentSuccess(ctx *gin.Context) {
	sessionID := ctx.Query("session_id")

	confirmation, svcErr := pc.paymentService.ConfirmPayment(ctx.Request.Context(), sessionID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, confirmation)
}
