package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendAccessCodeEmail(ctx context.Context, toEmail, inventoryName, code string, validHours int) error {
	args := m.Called(ctx, toEmail, inventoryName, code, validHours)
	return args.Error(0)
}
