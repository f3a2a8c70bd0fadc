package powens

import "context"

// MockClient is a mock implementation of Service for testing.
type MockClient struct {
	// Functions that can be set by tests to control behavior
	InitUserFn func(ctx context.Context) (AuthInit, error)
	TempCodeFn func(ctx context.Context, authToken string) (TempCode, error)
	ConnectFn  func(ctx context.Context, redirectURI string) (Connection, error)

	// Call tracking
	InitUserCalls int
	TempCodeCalls []string
	ConnectCalls  []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		TempCodeCalls: []string{},
		ConnectCalls:  []string{},
	}
}

func (m *MockClient) InitUser(ctx context.Context) (AuthInit, error) {
	m.InitUserCalls++

	if m.InitUserFn != nil {
		return m.InitUserFn(ctx)
	}

	return AuthInit{}, nil
}

func (m *MockClient) TempCode(ctx context.Context, authToken string) (TempCode, error) {
	m.TempCodeCalls = append(m.TempCodeCalls, authToken)

	if m.TempCodeFn != nil {
		return m.TempCodeFn(ctx, authToken)
	}

	return TempCode{}, nil
}

func (m *MockClient) WebviewURL(code, redirectURI string) string {
	return WebviewHost + "/connect?code=" + code + "&redirect_uri=" + redirectURI
}

func (m *MockClient) Connect(ctx context.Context, redirectURI string) (Connection, error) {
	m.ConnectCalls = append(m.ConnectCalls, redirectURI)

	if m.ConnectFn != nil {
		return m.ConnectFn(ctx, redirectURI)
	}

	return Connection{}, nil
}

// Ensure MockClient implements the Service interface.
var _ Service = (*MockClient)(nil)
