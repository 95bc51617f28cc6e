package command

import (
	"github.com/stretchr/testify/mock"

	"command-reset/internal/credentials"
)

const (
	ConnectMethod = "Connect"
	ClearMethod   = "Clear"
)

// Ensure MockClient implements ClientIFace
var _ ClientIFace = (*MockClient)(nil)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Connect(creds credentials.Credentials) error {
	args := m.Called(creds)
	return args.Error(0)
}

func (m *MockClient) Clear(target Target) Outcome {
	args := m.Called(target)
	return args.Get(0).(Outcome)
}
