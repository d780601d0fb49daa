package mocks

import (
	"iter"
	"slices"

	"github.com/brettbedarf/webshell/filesystem"
	"github.com/stretchr/testify/mock"
)

// MockTree implements shell.Tree for testing dispatch without a real tree
type MockTree struct {
	mock.Mock
}

func (m *MockTree) List() iter.Seq[string] {
	args := m.Called()

	// Allow tests to return a plain slice of names
	if names, ok := args.Get(0).([]string); ok {
		return slices.Values(names)
	}
	if args.Get(0) == nil {
		return func(func(string) bool) {}
	}
	return args.Get(0).(iter.Seq[string])
}

func (m *MockTree) MakeFile(name string) (*filesystem.Node, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*filesystem.Node), args.Error(1)
}

func (m *MockTree) MakeDirectory(name string) (*filesystem.Node, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*filesystem.Node), args.Error(1)
}

func (m *MockTree) ChangeDirectory(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockTree) PrintWorkingDirectory() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTree) Remove(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockTree) ClearDisplay() {
	m.Called()
}
