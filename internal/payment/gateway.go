package payment

import (
	"context"
	"math"
)

// IntentRequest describes a payment intent to be created with the provider.
// Amount is in minor units (pence/cents).
type IntentRequest struct {
	Amount      int64
	Currency    string
	Description string
	Metadata    map[string]string
}

// IntentResponse carries the provider-side intent reference and the
// client-usable secret.
type IntentResponse struct {
	PaymentIntentID string
	ClientSecret    string
	Status          string
	Amount          int64
	Currency        string
}

// Gateway abstracts the payment provider.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req *IntentRequest) (*IntentResponse, error)
	Name() string
}

// MinorUnits converts a decimal amount to integer minor units, rounding
// half-up on the multiplication by 100. Amounts are non-negative, so
// math.Round's half-away-from-zero matches round-half-up.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
