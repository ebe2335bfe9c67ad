// Package mocks provides test doubles for the pubchem client.
package mocks

import (
	"context"

	pubchem "github.com/sells-group/compound-cli/pkg/pubchem"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Properties provides a mock function with given fields: ctx, cid
func (_m *MockClient) Properties(ctx context.Context, cid string) (map[string]any, error) {
	ret := _m.Called(ctx, cid)

	if len(ret) == 0 {
		panic("no return value specified for Properties")
	}

	var r0 map[string]any
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (map[string]any, error)); ok {
		return rf(ctx, cid)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) map[string]any); ok {
		r0 = rf(ctx, cid)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]any)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, cid)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Synonym provides a mock function with given fields: ctx, cid
func (_m *MockClient) Synonym(ctx context.Context, cid string) (string, error) {
	ret := _m.Called(ctx, cid)

	if len(ret) == 0 {
		panic("no return value specified for Synonym")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, cid)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, cid)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, cid)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Property provides a mock function with given fields: ctx, cid, name
func (_m *MockClient) Property(ctx context.Context, cid string, name string) (string, error) {
	ret := _m.Called(ctx, cid, name)

	if len(ret) == 0 {
		panic("no return value specified for Property")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (string, error)); ok {
		return rf(ctx, cid, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) string); ok {
		r0 = rf(ctx, cid, name)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, cid, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AssaySummaries provides a mock function with given fields: ctx, cid
func (_m *MockClient) AssaySummaries(ctx context.Context, cid string) ([]pubchem.AssaySummary, error) {
	ret := _m.Called(ctx, cid)

	if len(ret) == 0 {
		panic("no return value specified for AssaySummaries")
	}

	var r0 []pubchem.AssaySummary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]pubchem.AssaySummary, error)); ok {
		return rf(ctx, cid)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []pubchem.AssaySummary); ok {
		r0 = rf(ctx, cid)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]pubchem.AssaySummary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, cid)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ProteinTargets provides a mock function with given fields: ctx, cid
func (_m *MockClient) ProteinTargets(ctx context.Context, cid string) ([]pubchem.ProteinTarget, error) {
	ret := _m.Called(ctx, cid)

	if len(ret) == 0 {
		panic("no return value specified for ProteinTargets")
	}

	var r0 []pubchem.ProteinTarget
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]pubchem.ProteinTarget, error)); ok {
		return rf(ctx, cid)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []pubchem.ProteinTarget); ok {
		r0 = rf(ctx, cid)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]pubchem.ProteinTarget)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, cid)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Pathways provides a mock function with given fields: ctx, cid
func (_m *MockClient) Pathways(ctx context.Context, cid string) ([]pubchem.Pathway, error) {
	ret := _m.Called(ctx, cid)

	if len(ret) == 0 {
		panic("no return value specified for Pathways")
	}

	var r0 []pubchem.Pathway
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]pubchem.Pathway, error)); ok {
		return rf(ctx, cid)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []pubchem.Pathway); ok {
		r0 = rf(ctx, cid)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]pubchem.Pathway)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, cid)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CIDsByName provides a mock function with given fields: ctx, name, broad
func (_m *MockClient) CIDsByName(ctx context.Context, name string, broad bool) ([]int64, error) {
	ret := _m.Called(ctx, name, broad)

	if len(ret) == 0 {
		panic("no return value specified for CIDsByName")
	}

	var r0 []int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) ([]int64, error)); ok {
		return rf(ctx, name, broad)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) []int64); ok {
		r0 = rf(ctx, name, broad)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, bool) error); ok {
		r1 = rf(ctx, name, broad)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CIDsByFormula provides a mock function with given fields: ctx, formula
func (_m *MockClient) CIDsByFormula(ctx context.Context, formula string) ([]int64, error) {
	ret := _m.Called(ctx, formula)

	if len(ret) == 0 {
		panic("no return value specified for CIDsByFormula")
	}

	var r0 []int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]int64, error)); ok {
		return rf(ctx, formula)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []int64); ok {
		r0 = rf(ctx, formula)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, formula)
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
