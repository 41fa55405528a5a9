package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock of rclone.Runner. Expectations match the
// argument vector as a []string.
type MockRunner struct {
	mock.Mock
}

func NewMockRunner(t testingT) *MockRunner {
	m := &MockRunner{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRunner) Run(ctx context.Context, args ...string) (string, error) {
	ret := m.Called(ctx, args)
	return ret.String(0), ret.Error(1)
}

// OnRun registers an expectation for the exact argument vector.
func (m *MockRunner) OnRun(args ...string) *mock.Call {
	return m.On("Run", mock.Anything, args)
}
