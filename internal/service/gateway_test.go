package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/payment-gateway/internal/bank"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
	"github.com/akylbek/payment-system/payment-gateway/internal/store"
	"github.com/akylbek/payment-system/payment-gateway/internal/validation"
)

// fakeBankClient records calls and plays back a canned decision or error.
type fakeBankClient struct {
	calls    int
	lastReq  models.BankAuthRequest
	response models.BankAuthResponse
	err      error
}

func (f *fakeBankClient) Authorize(_ context.Context, req models.BankAuthRequest) (models.BankAuthResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return models.BankAuthResponse{}, f.err
	}
	return f.response, nil
}

func fixedClock() time.Time {
	return time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
}

func validRequest() models.PaymentRequest {
	return models.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		Currency:    "USD",
		Amount:      1050,
		CVV:         "123",
	}
}

func newTestGateway(bankClient *fakeBankClient) (*Gateway, *store.SummaryStore) {
	summaries := store.NewSummaryStore()
	g := NewGateway(validation.NewValidator(fixedClock), bankClient, summaries, nil)
	return g, summaries
}

func TestProcessPayment_Authorized(t *testing.T) {
	bankClient := &fakeBankClient{response: models.BankAuthResponse{Authorized: true, AuthorizationCode: "auth-code-1"}}
	g, summaries := newTestGateway(bankClient)

	summary, err := g.ProcessPayment(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, models.StatusAuthorized, summary.Status)
	assert.Equal(t, 8877, summary.CardNumberLastFour)
	assert.Equal(t, int64(1050), summary.Amount)
	assert.Equal(t, "USD", summary.Currency)
	assert.Equal(t, 12, summary.ExpiryMonth)
	assert.Equal(t, 2030, summary.ExpiryYear)
	assert.NotEqual(t, summary.ID.String(), "00000000-0000-0000-0000-000000000000")

	stored, ok := summaries.Get(summary.ID)
	require.True(t, ok)
	assert.Equal(t, summary, stored)
}

func TestProcessPayment_Declined(t *testing.T) {
	bankClient := &fakeBankClient{response: models.BankAuthResponse{Authorized: false}}
	g, summaries := newTestGateway(bankClient)

	summary, err := g.ProcessPayment(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, summary.Status)
	assert.Equal(t, 8877, summary.CardNumberLastFour)
	assert.Equal(t, int64(1050), summary.Amount)
	assert.Equal(t, "USD", summary.Currency)

	_, ok := summaries.Get(summary.ID)
	assert.True(t, ok)
}

func TestProcessPayment_BankRequestShape(t *testing.T) {
	bankClient := &fakeBankClient{response: models.BankAuthResponse{Authorized: true}}
	g, _ := newTestGateway(bankClient)

	_, err := g.ProcessPayment(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, models.BankAuthRequest{
		CardNumber: "2222405343248877",
		ExpiryDate: "12/2030",
		Currency:   "USD",
		Amount:     1050,
		CVV:        "123",
	}, bankClient.lastReq)
}

func TestProcessPayment_RejectedSkipsBankAndStore(t *testing.T) {
	bankClient := &fakeBankClient{}
	g, summaries := newTestGateway(bankClient)

	req := validRequest()
	req.Currency = "SEK"
	req.Amount = 0
	req.ExpiryMonth = 1
	req.ExpiryYear = 2020

	_, err := g.ProcessPayment(context.Background(), req)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.GreaterOrEqual(t, len(rejection.Violations), 3)
	assert.Zero(t, bankClient.calls, "bank must not be invoked on rejection")
	assert.Zero(t, summaries.Len(), "nothing must be stored on rejection")
}

func TestProcessPayment_BankUnavailable(t *testing.T) {
	bankClient := &fakeBankClient{err: fmt.Errorf("%w: bank returned 503", bank.ErrUnavailable)}
	g, summaries := newTestGateway(bankClient)

	_, err := g.ProcessPayment(context.Background(), validRequest())

	assert.ErrorIs(t, err, bank.ErrUnavailable)
	assert.Zero(t, summaries.Len(), "nothing must be stored on unavailability")
}

func TestProcessPayment_UnexpectedBankError(t *testing.T) {
	bankClient := &fakeBankClient{err: errors.New("unexpected bank status 418")}
	g, summaries := newTestGateway(bankClient)

	_, err := g.ProcessPayment(context.Background(), validRequest())

	require.Error(t, err)
	assert.NotErrorIs(t, err, bank.ErrUnavailable)
	var rejection *RejectionError
	assert.False(t, errors.As(err, &rejection))
	assert.Zero(t, summaries.Len())
}

func TestProcessPayment_UniqueIDs(t *testing.T) {
	bankClient := &fakeBankClient{response: models.BankAuthResponse{Authorized: true}}
	g, _ := newTestGateway(bankClient)

	first, err := g.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := g.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetPayment(t *testing.T) {
	bankClient := &fakeBankClient{response: models.BankAuthResponse{Authorized: true}}
	g, _ := newTestGateway(bankClient)

	created, err := g.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := g.GetPayment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetPayment_NotFound(t *testing.T) {
	g, _ := newTestGateway(&fakeBankClient{})

	_, err := g.GetPayment(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
