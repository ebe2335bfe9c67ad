// Package mocks provides test doubles for the rcsb client.
package mocks

import (
	"context"

	rcsb "github.com/sells-group/compound-cli/pkg/rcsb"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Entry provides a mock function with given fields: ctx, pdbID
func (_m *MockClient) Entry(ctx context.Context, pdbID string) (*rcsb.Entry, error) {
	ret := _m.Called(ctx, pdbID)

	if len(ret) == 0 {
		panic("no return value specified for Entry")
	}

	var r0 *rcsb.Entry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*rcsb.Entry, error)); ok {
		return rf(ctx, pdbID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *rcsb.Entry); ok {
		r0 = rf(ctx, pdbID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*rcsb.Entry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, pdbID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockClient creates a new instance of MockClient.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	mock := &MockClient{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
