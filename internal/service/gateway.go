package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/payment-gateway/internal/bank"
	"github.com/akylbek/payment-system/payment-gateway/internal/card"
	"github.com/akylbek/payment-system/payment-gateway/internal/events"
	"github.com/akylbek/payment-system/payment-gateway/internal/interfaces"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
	"github.com/akylbek/payment-system/payment-gateway/internal/telemetry"
	"github.com/akylbek/payment-system/payment-gateway/internal/validation"
)

// ErrPaymentNotFound is returned by GetPayment when no summary exists for
// the requested id.
var ErrPaymentNotFound = errors.New("payment not found")

// RejectionError carries the full list of policy violations for a rejected
// payment. A rejected payment never reaches the bank or the store.
type RejectionError struct {
	Violations []string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("payment rejected with %d validation error(s)", len(e.Violations))
}

// Gateway sequences a payment through validation, bank authorization,
// summary construction and storage.
type Gateway struct {
	validator *validation.Validator
	bank      interfaces.BankClient
	store     interfaces.SummaryStore
	publisher *events.Publisher
}

func NewGateway(
	validator *validation.Validator,
	bankClient interfaces.BankClient,
	store interfaces.SummaryStore,
	publisher *events.Publisher,
) *Gateway {
	return &Gateway{
		validator: validator,
		bank:      bankClient,
		store:     store,
		publisher: publisher,
	}
}

// ProcessPayment runs a single payment to a terminal outcome. On a rejection
// it returns a *RejectionError; on bank unavailability the error unwraps to
// bank.ErrUnavailable; a summary is stored only for authorized or declined
// outcomes.
func (g *Gateway) ProcessPayment(ctx context.Context, req models.PaymentRequest) (models.PaymentSummary, error) {
	telemetry.Logger.Info("payment request received",
		zap.String("correlation_id", telemetry.CorrelationID(ctx)),
		zap.String("currency", req.Currency),
		zap.Int64("amount", req.Amount),
	)

	if violations := g.validator.Validate(req); len(violations) > 0 {
		telemetry.Logger.Warn("payment rejected",
			zap.String("correlation_id", telemetry.CorrelationID(ctx)),
			zap.Int("violations", len(violations)),
		)
		telemetry.PaymentsProcessed.WithLabelValues("rejected").Inc()
		return models.PaymentSummary{}, &RejectionError{Violations: violations}
	}

	decision, err := g.bank.Authorize(ctx, models.BankAuthRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate(),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	})
	if err != nil {
		if errors.Is(err, bank.ErrUnavailable) {
			telemetry.PaymentsProcessed.WithLabelValues("bank_unavailable").Inc()
			return models.PaymentSummary{}, err
		}
		telemetry.Logger.Error("unexpected authorization failure",
			zap.String("correlation_id", telemetry.CorrelationID(ctx)),
			zap.Error(err),
		)
		telemetry.PaymentsProcessed.WithLabelValues("error").Inc()
		return models.PaymentSummary{}, fmt.Errorf("authorizing payment: %w", err)
	}

	status := models.StatusDeclined
	if decision.Authorized {
		status = models.StatusAuthorized
	}

	summary := models.PaymentSummary{
		ID:                 uuid.New(),
		Status:             status,
		CardNumberLastFour: card.LastFour(req.CardNumber),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
	}
	g.store.Add(summary)
	g.publisher.PaymentProcessed(ctx, summary)

	telemetry.PaymentsProcessed.WithLabelValues(outcomeLabel(status)).Inc()
	telemetry.Logger.Info("payment completed",
		zap.String("correlation_id", telemetry.CorrelationID(ctx)),
		zap.String("payment_id", summary.ID.String()),
		zap.String("status", string(status)),
		zap.String("currency", summary.Currency),
		zap.Int64("amount", summary.Amount),
		zap.Int("last_four", summary.CardNumberLastFour),
	)
	return summary, nil
}

// GetPayment returns the stored summary for id, or ErrPaymentNotFound.
func (g *Gateway) GetPayment(ctx context.Context, id uuid.UUID) (models.PaymentSummary, error) {
	telemetry.Logger.Debug("payment lookup",
		zap.String("correlation_id", telemetry.CorrelationID(ctx)),
		zap.String("payment_id", id.String()),
	)
	summary, ok := g.store.Get(id)
	if !ok {
		return models.PaymentSummary{}, ErrPaymentNotFound
	}
	return summary, nil
}

func outcomeLabel(status models.PaymentStatus) string {
	if status == models.StatusAuthorized {
		return "authorized"
	}
	return "declined"
}
