package identity

import "context"

// MockClient is a mock implementation of Service for testing.
type MockClient struct {
	// Functions that can be set by tests to control behavior
	LoginFn   func(ctx context.Context, code string) (Session, error)
	SignOutFn func(ctx context.Context, accessToken string) error

	// Call tracking
	LoginCalls   []string
	SignOutCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		LoginCalls:   []string{},
		SignOutCalls: []string{},
	}
}

func (m *MockClient) AuthCodeURL(state string) string {
	return "https://identity.example.com/authorize?state=" + state
}

func (m *MockClient) Login(ctx context.Context, code string) (Session, error) {
	m.LoginCalls = append(m.LoginCalls, code)

	if m.LoginFn != nil {
		return m.LoginFn(ctx, code)
	}

	return Session{}, nil
}

func (m *MockClient) SignOut(ctx context.Context, accessToken string) error {
	m.SignOutCalls = append(m.SignOutCalls, accessToken)

	if m.SignOutFn != nil {
		return m.SignOutFn(ctx, accessToken)
	}

	return nil
}

// Ensure MockClient implements the Service interface.
var _ Service = (*MockClient)(nil)
