package credentials

import (
	"github.com/stretchr/testify/mock"

	"command-reset/internal/config"
)

const (
	ResolveMethod    = "Resolve"
	LoadRecordMethod = "LoadRecord"
)

// Ensure MockResolver implements ResolverIFace
var _ ResolverIFace = (*MockResolver)(nil)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve() (Credentials, error) {
	args := m.Called()
	return args.Get(0).(Credentials), args.Error(1)
}

// Ensure MockRecordLoader implements RecordLoader
var _ RecordLoader = (*MockRecordLoader)(nil)

type MockRecordLoader struct {
	mock.Mock
}

func (m *MockRecordLoader) LoadRecord() (config.Record, error) {
	args := m.Called()
	return args.Get(0).(config.Record), args.Error(1)
}
