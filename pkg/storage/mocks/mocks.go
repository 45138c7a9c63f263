// Written by hand in MockGen's output shape, not generated.
// Source: github.com/apoms/peloton-opt/pkg/storage (interfaces: VisibilityChecker,IndexImpl,Clusterer,Catalog)

// Package mocks holds hand-maintained gomock doubles for the storage
// package's external collaborator interfaces, standing in for
// mockgen-generated output since regenerating it here would require
// running the Go toolchain.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	storage "github.com/apoms/peloton-opt/pkg/storage"
)

// MockVisibilityChecker is a mock of the storage.VisibilityChecker interface.
type MockVisibilityChecker struct {
	ctrl     *gomock.Controller
	recorder *MockVisibilityCheckerMockRecorder
}

// MockVisibilityCheckerMockRecorder is the mock recorder for MockVisibilityChecker.
type MockVisibilityCheckerMockRecorder struct {
	mock *MockVisibilityChecker
}

// NewMockVisibilityChecker creates a new mock instance.
func NewMockVisibilityChecker(ctrl *gomock.Controller) *MockVisibilityChecker {
	mock := &MockVisibilityChecker{ctrl: ctrl}
	mock.recorder = &MockVisibilityCheckerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVisibilityChecker) EXPECT() *MockVisibilityCheckerMockRecorder {
	return m.recorder
}

// IsVisible mocks base method.
func (m *MockVisibilityChecker) IsVisible(header *storage.TileGroupHeader, slot uint32) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsVisible", header, slot)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsVisible indicates an expected call of IsVisible.
func (mr *MockVisibilityCheckerMockRecorder) IsVisible(header, slot interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsVisible", reflect.TypeOf((*MockVisibilityChecker)(nil).IsVisible), header, slot)
}

// MockIndexImpl is a mock of the storage.IndexImpl interface.
type MockIndexImpl struct {
	ctrl     *gomock.Controller
	recorder *MockIndexImplMockRecorder
}

// MockIndexImplMockRecorder is the mock recorder for MockIndexImpl.
type MockIndexImplMockRecorder struct {
	mock *MockIndexImpl
}

// NewMockIndexImpl creates a new mock instance.
func NewMockIndexImpl(ctrl *gomock.Controller) *MockIndexImpl {
	mock := &MockIndexImpl{ctrl: ctrl}
	mock.recorder = &MockIndexImplMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIndexImpl) EXPECT() *MockIndexImplMockRecorder {
	return m.recorder
}

// InsertEntry mocks base method.
func (m *MockIndexImpl) InsertEntry(key []storage.Value, location storage.ItemPointer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertEntry", key, location)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertEntry indicates an expected call of InsertEntry.
func (mr *MockIndexImplMockRecorder) InsertEntry(key, location interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertEntry", reflect.TypeOf((*MockIndexImpl)(nil).InsertEntry), key, location)
}

// MockClusterer is a mock of the storage.Clusterer interface.
type MockClusterer struct {
	ctrl     *gomock.Controller
	recorder *MockClustererMockRecorder
}

// MockClustererMockRecorder is the mock recorder for MockClusterer.
type MockClustererMockRecorder struct {
	mock *MockClusterer
}

// NewMockClusterer creates a new mock instance.
func NewMockClusterer(ctrl *gomock.Controller) *MockClusterer {
	mock := &MockClusterer{ctrl: ctrl}
	mock.recorder = &MockClustererMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClusterer) EXPECT() *MockClustererMockRecorder {
	return m.recorder
}

// ProcessSample mocks base method.
func (m *MockClusterer) ProcessSample(s storage.Sample) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ProcessSample", s)
}

// ProcessSample indicates an expected call of ProcessSample.
func (mr *MockClustererMockRecorder) ProcessSample(s interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProcessSample", reflect.TypeOf((*MockClusterer)(nil).ProcessSample), s)
}

// Partitioning mocks base method.
func (m *MockClusterer) Partitioning(maxTiles, columnCount int) *storage.ColumnMap {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Partitioning", maxTiles, columnCount)
	ret0, _ := ret[0].(*storage.ColumnMap)
	return ret0
}

// Partitioning indicates an expected call of Partitioning.
func (mr *MockClustererMockRecorder) Partitioning(maxTiles, columnCount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Partitioning", reflect.TypeOf((*MockClusterer)(nil).Partitioning), maxTiles, columnCount)
}

// MockCatalog is a mock of the storage.Catalog interface.
type MockCatalog struct {
	ctrl     *gomock.Controller
	recorder *MockCatalogMockRecorder
}

// MockCatalogMockRecorder is the mock recorder for MockCatalog.
type MockCatalogMockRecorder struct {
	mock *MockCatalog
}

// NewMockCatalog creates a new mock instance.
func NewMockCatalog(ctrl *gomock.Controller) *MockCatalog {
	mock := &MockCatalog{ctrl: ctrl}
	mock.recorder = &MockCatalogMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCatalog) EXPECT() *MockCatalogMockRecorder {
	return m.recorder
}

// NextOid mocks base method.
func (m *MockCatalog) NextOid() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextOid")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// NextOid indicates an expected call of NextOid.
func (mr *MockCatalogMockRecorder) NextOid() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextOid", reflect.TypeOf((*MockCatalog)(nil).NextOid))
}

// AddTileGroup mocks base method.
func (m *MockCatalog) AddTileGroup(id uint64, group *storage.TileGroup) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddTileGroup", id, group)
}

// AddTileGroup indicates an expected call of AddTileGroup.
func (mr *MockCatalogMockRecorder) AddTileGroup(id, group interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddTileGroup", reflect.TypeOf((*MockCatalog)(nil).AddTileGroup), id, group)
}

// DropTileGroup mocks base method.
func (m *MockCatalog) DropTileGroup(id uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DropTileGroup", id)
}

// DropTileGroup indicates an expected call of DropTileGroup.
func (mr *MockCatalogMockRecorder) DropTileGroup(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DropTileGroup", reflect.TypeOf((*MockCatalog)(nil).DropTileGroup), id)
}

// GetTileGroup mocks base method.
func (m *MockCatalog) GetTileGroup(id uint64) (*storage.TileGroup, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTileGroup", id)
	ret0, _ := ret[0].(*storage.TileGroup)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// GetTileGroup indicates an expected call of GetTileGroup.
func (mr *MockCatalogMockRecorder) GetTileGroup(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTileGroup", reflect.TypeOf((*MockCatalog)(nil).GetTileGroup), id)
}
