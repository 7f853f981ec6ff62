package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

const alphanumericChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomAlphanumeric(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumericChars[rand.Intn(len(alphanumericChars))]
	}
	return string(b)
}

// MockGateway implements Gateway in memory, for tests and local runs
type MockGateway struct {
	mu      sync.Mutex
	intents map[string]*IntentResponse

	// FailNext forces the next CreatePaymentIntent call to fail.
	FailNext bool
}

// NewMockGateway creates a new mock gateway
func NewMockGateway() *MockGateway {
	return &MockGateway{
		intents: make(map[string]*IntentResponse),
	}
}

// CreatePaymentIntent creates a mock PaymentIntent with Stripe-shaped IDs
func (g *MockGateway) CreatePaymentIntent(ctx context.Context, req *IntentRequest) (*IntentResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("payment intent request is required")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailNext {
		g.FailNext = false
		return nil, fmt.Errorf("mock gateway: provider unavailable")
	}

	paymentIntentID := fmt.Sprintf("pi_mock_%s", randomAlphanumeric(24))
	resp := &IntentResponse{
		PaymentIntentID: paymentIntentID,
		ClientSecret:    fmt.Sprintf("%s_secret_%s", paymentIntentID, randomAlphanumeric(24)),
		Status:          "requires_payment_method",
		Amount:          req.Amount,
		Currency:        req.Currency,
	}
	g.intents[paymentIntentID] = resp

	return resp, nil
}

// Intent returns a previously created mock intent, if any
func (g *MockGateway) Intent(paymentIntentID string) (*IntentResponse, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	resp, ok := g.intents[paymentIntentID]
	return resp, ok
}

// Name returns the gateway name
func (g *MockGateway) Name() string {
	return "mock"
}
