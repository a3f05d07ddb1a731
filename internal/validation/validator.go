// Package validation evaluates payment policy rules. Rules are aggregated
// rather than short-circuited so a caller sees every problem at once.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

// Clock supplies the current time. Injected so expiry rules are testable
// against a fixed instant.
type Clock func() time.Time

// AllowedCurrencies is the fixed whitelist of supported currency codes.
var AllowedCurrencies = []string{"USD", "EUR", "GBP"}

type Validator struct {
	now Clock
}

func NewValidator(now Clock) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Validate returns the list of policy violations for a payment request.
// An empty list means the request is valid.
func (v *Validator) Validate(req models.PaymentRequest) []string {
	var violations []string

	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		violations = append(violations, "Invalid expiry month/year")
	} else if !expiryAfter(req.ExpiryYear, req.ExpiryMonth, v.now()) {
		violations = append(violations, "Expiry date must be in the future")
	}

	if !currencyAllowed(req.Currency) {
		violations = append(violations,
			fmt.Sprintf("Currency must be one of: %s", strings.Join(AllowedCurrencies, ", ")))
	}

	// Defense in depth: the request schema already rejects non-positive
	// amounts before this rule runs.
	if req.Amount <= 0 {
		violations = append(violations, "Amount must be greater than 0")
	}

	return violations
}

// expiryAfter reports whether (year, month) is strictly after the year-month
// of now. The current month itself does not pass.
func expiryAfter(year, month int, now time.Time) bool {
	return year*12+month > now.Year()*12+int(now.Month())
}

func currencyAllowed(code string) bool {
	code = strings.ToUpper(code)
	for _, c := range AllowedCurrencies {
		if code == c {
			return true
		}
	}
	return false
}
