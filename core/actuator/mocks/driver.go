package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Driver is a mock implementation of actuator.Driver
type Driver struct {
	mock.Mock
}

func (m *Driver) Move(ctx context.Context, angle int) error {
	args := m.Called(ctx, angle)
	return args.Error(0)
}

func (m *Driver) Close() error {
	args := m.Called()
	return args.Error(0)
}
