// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
//

// Package matching_test is a generated GoMock package.
package matching_test

import (
	context "context"
	entities "fastship/internal/entities"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockShipmentProvider is a mock of ShipmentProvider interface.
type MockShipmentProvider struct {
	ctrl     *gomock.Controller
	recorder *MockShipmentProviderMockRecorder
	isgomock struct{}
}

// MockShipmentProviderMockRecorder is the mock recorder for MockShipmentProvider.
type MockShipmentProviderMockRecorder struct {
	mock *MockShipmentProvider
}

// NewMockShipmentProvider creates a new mock instance.
func NewMockShipmentProvider(ctrl *gomock.Controller) *MockShipmentProvider {
	mock := &MockShipmentProvider{ctrl: ctrl}
	mock.recorder = &MockShipmentProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockShipmentProvider) EXPECT() *MockShipmentProviderMockRecorder {
	return m.recorder
}

// GetShipment mocks base method.
func (m *MockShipmentProvider) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetShipment", ctx, id)
	ret0, _ := ret[0].(*entities.Shipment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetShipment indicates an expected call of GetShipment.
func (mr *MockShipmentProviderMockRecorder) GetShipment(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetShipment", reflect.TypeOf((*MockShipmentProvider)(nil).GetShipment), ctx, id)
}

// MockTripProvider is a mock of TripProvider interface.
type MockTripProvider struct {
	ctrl     *gomock.Controller
	recorder *MockTripProviderMockRecorder
	isgomock struct{}
}

// MockTripProviderMockRecorder is the mock recorder for MockTripProvider.
type MockTripProviderMockRecorder struct {
	mock *MockTripProvider
}

// NewMockTripProvider creates a new mock instance.
func NewMockTripProvider(ctrl *gomock.Controller) *MockTripProvider {
	mock := &MockTripProvider{ctrl: ctrl}
	mock.recorder = &MockTripProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTripProvider) EXPECT() *MockTripProviderMockRecorder {
	return m.recorder
}

// GetByStatus mocks base method.
func (m *MockTripProvider) GetByStatus(ctx context.Context, status entities.TripStatusType) ([]entities.Trip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByStatus", ctx, status)
	ret0, _ := ret[0].([]entities.Trip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByStatus indicates an expected call of GetByStatus.
func (mr *MockTripProviderMockRecorder) GetByStatus(ctx, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByStatus", reflect.TypeOf((*MockTripProvider)(nil).GetByStatus), ctx, status)
}
