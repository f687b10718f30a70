package mocks

import (
	"io/fs"

	"github.com/brettbedarf/fsgraph/internal/dirfs"
	"github.com/stretchr/testify/mock"
)

// MockDirOpener implements dirfs.DirOpener for testing across packages
type MockDirOpener struct {
	mock.Mock
}

func (m *MockDirOpener) OpenDir(path string) (dirfs.DirHandle, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(dirfs.DirHandle), args.Error(1)
}

// MockDirHandle implements dirfs.DirHandle
type MockDirHandle struct {
	mock.Mock
}

func (m *MockDirHandle) ReadDir(n int) ([]fs.DirEntry, error) {
	args := m.Called(n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fs.DirEntry), args.Error(1)
}

func (m *MockDirHandle) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockDirEntry implements fs.DirEntry. Only Name and Info are expected to be
// called by scans.
type MockDirEntry struct {
	mock.Mock
}

func (m *MockDirEntry) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDirEntry) IsDir() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockDirEntry) Type() fs.FileMode {
	args := m.Called()
	return args.Get(0).(fs.FileMode)
}

func (m *MockDirEntry) Info() (fs.FileInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fs.FileInfo), args.Error(1)
}
