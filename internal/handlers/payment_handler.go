package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/payment-gateway/internal/bank"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
	"github.com/akylbek/payment-system/payment-gateway/internal/service"
	"github.com/akylbek/payment-system/payment-gateway/internal/telemetry"
)

type PaymentHandler struct {
	gateway *service.Gateway
}

func NewPaymentHandler(gateway *service.Gateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// ProcessPayment handles POST /api/payments.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Warn("malformed payment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.RejectionResponse{
			Status: models.StatusRejected,
			Errors: bindErrors(err),
		})
		return
	}

	summary, err := h.gateway.ProcessPayment(c.Request.Context(), req)
	if err != nil {
		var rejection *service.RejectionError
		switch {
		case errors.As(err, &rejection):
			c.JSON(http.StatusBadRequest, models.RejectionResponse{
				Status: models.StatusRejected,
				Errors: rejection.Violations,
			})
		case errors.Is(err, bank.ErrUnavailable):
			telemetry.Logger.Error("bank unavailable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Payment processor unavailable, retry later",
			})
		default:
			telemetry.Logger.Error("unhandled payment error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// GetPayment handles GET /api/payments/:id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.RejectionResponse{
			Status: models.StatusRejected,
			Errors: []string{"id: invalid value"},
		})
		return
	}

	summary, err := h.gateway.GetPayment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Payment not found"})
			return
		}
		telemetry.Logger.Error("unhandled lookup error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// bindErrors flattens a gin binding failure into user-facing messages.
// Field constraint failures are reported per field; anything else (bad JSON,
// wrong types) collapses to a single message.
func bindErrors(err error) []string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s: invalid value", fe.Field()))
		}
		return msgs
	}
	return []string{"Malformed JSON request"}
}
