package payment

import "context"

// MockClient is a mock implementation of Service for testing.
type MockClient struct {
	// ConfirmPurchaseFn can be set by tests to control behavior
	ConfirmPurchaseFn func(ctx context.Context, receipt string) (Purchase, error)

	// Call tracking
	ConfirmPurchaseCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		ConfirmPurchaseCalls: []string{},
	}
}

func (m *MockClient) ConfirmPurchase(ctx context.Context, receipt string) (Purchase, error) {
	m.ConfirmPurchaseCalls = append(m.ConfirmPurchaseCalls, receipt)

	if m.ConfirmPurchaseFn != nil {
		return m.ConfirmPurchaseFn(ctx, receipt)
	}

	return Purchase{}, nil
}

// Ensure MockClient implements the Service interface.
var _ Service = (*MockClient)(nil)
