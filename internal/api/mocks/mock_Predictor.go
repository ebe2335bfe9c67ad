// Package mocks provides test doubles for the api package.
package mocks

import (
	"context"

	model "github.com/sells-group/compound-cli/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockPredictor is a mock type for the Predictor interface.
type MockPredictor struct {
	mock.Mock
}

// Predict provides a mock function with given fields: ctx, in
func (_m *MockPredictor) Predict(ctx context.Context, in model.KnownInput) (*model.Prediction, error) {
	ret := _m.Called(ctx, in)

	if len(ret) == 0 {
		panic("no return value specified for Predict")
	}

	var r0 *model.Prediction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.KnownInput) (*model.Prediction, error)); ok {
		return rf(ctx, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.KnownInput) *model.Prediction); ok {
		r0 = rf(ctx, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Prediction)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.KnownInput) error); ok {
		r1 = rf(ctx, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PredictByName provides a mock function with given fields: ctx, name
func (_m *MockPredictor) PredictByName(ctx context.Context, name string) (*model.Prediction, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for PredictByName")
	}

	var r0 *model.Prediction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*model.Prediction, error)); ok {
		return rf(ctx, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *model.Prediction); ok {
		r0 = rf(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Prediction)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PredictUnknown provides a mock function with given fields: ctx, in
func (_m *MockPredictor) PredictUnknown(ctx context.Context, in model.UnknownInput) (*model.UnknownPrediction, error) {
	ret := _m.Called(ctx, in)

	if len(ret) == 0 {
		panic("no return value specified for PredictUnknown")
	}

	var r0 *model.UnknownPrediction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.UnknownInput) (*model.UnknownPrediction, error)); ok {
		return rf(ctx, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.UnknownInput) *model.UnknownPrediction); ok {
		r0 = rf(ctx, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.UnknownPrediction)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.UnknownInput) error); ok {
		r1 = rf(ctx, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Resolve provides a mock function with given fields: ctx, name
func (_m *MockPredictor) Resolve(ctx context.Context, name string) (*model.Resolution, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for Resolve")
	}

	var r0 *model.Resolution
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*model.Resolution, error)); ok {
		return rf(ctx, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *model.Resolution); ok {
		r0 = rf(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Resolution)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CheckFormula provides a mock function with given fields: ctx, formula
func (_m *MockPredictor) CheckFormula(ctx context.Context, formula string) (*model.FormulaCheck, error) {
	ret := _m.Called(ctx, formula)

	if len(ret) == 0 {
		panic("no return value specified for CheckFormula")
	}

	var r0 *model.FormulaCheck
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*model.FormulaCheck, error)); ok {
		return rf(ctx, formula)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *model.FormulaCheck); ok {
		r0 = rf(ctx, formula)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.FormulaCheck)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, formula)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockPredictor creates a new instance of MockPredictor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPredictor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPredictor {
	mock := &MockPredictor{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
