package mocks

import (
	"context"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/provision"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockRemoteCatalog is a testify mock of interfaces.RemoteCatalog
type MockRemoteCatalog struct {
	mock.Mock
}

func NewMockRemoteCatalog(t testingT) *MockRemoteCatalog {
	m := &MockRemoteCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRemoteCatalog) ListRemotes(ctx context.Context) ([]models.Remote, error) {
	ret := m.Called(ctx)
	var remotes []models.Remote
	if v := ret.Get(0); v != nil {
		remotes = v.([]models.Remote)
	}
	return remotes, ret.Error(1)
}

// MockDirectoryLister is a testify mock of interfaces.DirectoryLister
type MockDirectoryLister struct {
	mock.Mock
}

func NewMockDirectoryLister(t testingT) *MockDirectoryLister {
	m := &MockDirectoryLister{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDirectoryLister) ListDir(ctx context.Context, remote, path string) ([]models.FileItem, error) {
	ret := m.Called(ctx, remote, path)
	var items []models.FileItem
	if v := ret.Get(0); v != nil {
		items = v.([]models.FileItem)
	}
	return items, ret.Error(1)
}

func (m *MockDirectoryLister) LocalLabel() string {
	ret := m.Called()
	return ret.String(0)
}

// MockTransferExecutor is a testify mock of interfaces.TransferExecutor
type MockTransferExecutor struct {
	mock.Mock
}

func NewMockTransferExecutor(t testingT) *MockTransferExecutor {
	m := &MockTransferExecutor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransferExecutor) Copy(ctx context.Context, req models.TransferRequest) (string, error) {
	ret := m.Called(ctx, req)
	return ret.String(0), ret.Error(1)
}

func (m *MockTransferExecutor) Move(ctx context.Context, req models.TransferRequest) (string, error) {
	ret := m.Called(ctx, req)
	return ret.String(0), ret.Error(1)
}

func (m *MockTransferExecutor) Delete(ctx context.Context, req models.DeleteRequest) error {
	ret := m.Called(ctx, req)
	return ret.Error(0)
}

// MockToolProvisioner is a testify mock of interfaces.ToolProvisioner
type MockToolProvisioner struct {
	mock.Mock
}

func NewMockToolProvisioner(t testingT) *MockToolProvisioner {
	m := &MockToolProvisioner{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockToolProvisioner) CheckVersion(ctx context.Context) models.RcloneInfo {
	ret := m.Called(ctx)
	return ret.Get(0).(models.RcloneInfo)
}

func (m *MockToolProvisioner) Install(ctx context.Context, sink provision.ProgressSink) (string, error) {
	ret := m.Called(ctx, sink)
	return ret.String(0), ret.Error(1)
}

func (m *MockToolProvisioner) Update(ctx context.Context, sink provision.ProgressSink) (string, error) {
	ret := m.Called(ctx, sink)
	return ret.String(0), ret.Error(1)
}
