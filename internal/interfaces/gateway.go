package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

// BankClient defines the contract for the acquiring bank authorization call.
type BankClient interface {
	Authorize(ctx context.Context, req models.BankAuthRequest) (models.BankAuthResponse, error)
}

// SummaryStore defines the contract for payment summary storage.
type SummaryStore interface {
	Add(summary models.PaymentSummary)
	Get(id uuid.UUID) (models.PaymentSummary, bool)
}
