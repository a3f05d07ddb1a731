package models

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/payment-gateway/internal/card"
)

type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
	StatusRejected   PaymentStatus = "Rejected"
)

// PaymentRequest is the inbound payment body. The binding tags carry the
// schema-level constraints; policy rules live in the validation package.
type PaymentRequest struct {
	CardNumber  string `json:"card_number" binding:"required,numeric,min=14,max=19"`
	ExpiryMonth int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" binding:"required"`
	Currency    string `json:"currency" binding:"required,len=3"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	CVV         string `json:"cvv" binding:"required,numeric,min=3,max=4"`
}

// ExpiryDate renders the expiry in the MM/YYYY form the bank expects.
func (r PaymentRequest) ExpiryDate() string {
	return fmt.Sprintf("%02d/%d", r.ExpiryMonth, r.ExpiryYear)
}

// String masks card data so a request can be logged safely.
func (r PaymentRequest) String() string {
	return fmt.Sprintf("PaymentRequest{card_number=%s expiry=%02d/%d currency=%s amount=%d cvv=%s}",
		card.MaskPAN(r.CardNumber), r.ExpiryMonth, r.ExpiryYear, r.Currency, r.Amount, card.MaskCVV(r.CVV))
}

// BankAuthRequest is the outbound shape for the acquiring bank simulator.
type BankAuthRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// BankAuthResponse is the bank's decision. The authorization code is opaque
// and forwarded verbatim; it is empty when not authorized.
type BankAuthResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// PaymentSummary is the only persisted record of a processed payment. It
// never holds more than the last four card digits and never a CVV.
type PaymentSummary struct {
	ID                 uuid.UUID     `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour int           `json:"card_number_last_four"`
	ExpiryMonth        int           `json:"expiry_month"`
	ExpiryYear         int           `json:"expiry_year"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}

// RejectionResponse is returned for schema and policy validation failures.
type RejectionResponse struct {
	Status PaymentStatus `json:"status"`
	Errors []string      `json:"errors"`
}

// ErrorResponse is the generic error body; it never carries internal detail.
type ErrorResponse struct {
	Error string `json:"error"`
}
