package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/secureride/booking-service/internal/dto"
	"github.com/secureride/booking-service/internal/service"
)

// PaymentHandler handles payment intent requests
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateIntent creates a payment intent for one of the caller's bookings
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	response, err := h.paymentService.CreatePaymentIntent(
		c.Request.Context(),
		c.GetString("user_id"),
		req.BookingID,
		c.ClientIP(),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
