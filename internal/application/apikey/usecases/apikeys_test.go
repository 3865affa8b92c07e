package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostera/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockUsageReader struct {
	UsedFunc func(ctx context.Context, tenantID uint) (int64, error)
}

func (m *mockUsageReader) Used(ctx context.Context, tenantID uint) (int64, error) {
	if m.UsedFunc != nil {
		return m.UsedFunc(ctx, tenantID)
	}
	return 0, nil
}

func TestGetAPIUsage(t *testing.T) {
	reader := &mockUsageReader{
		UsedFunc: func(ctx context.Context, tenantID uint) (int64, error) {
			assert.Equal(t, uint(5), tenantID)
			return 342, nil
		},
	}

	uc := NewGetAPIUsageUseCase(reader, nopLogger{})
	usage, err := uc.Execute(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(342), usage.CallsThisMonth)
}

func TestGetAPIUsage_ReaderError(t *testing.T) {
	reader := &mockUsageReader{
		UsedFunc: func(ctx context.Context, tenantID uint) (int64, error) {
			return 0, errors.New("redis down")
		},
	}

	uc := NewGetAPIUsageUseCase(reader, nopLogger{})
	usage, err := uc.Execute(context.Background(), 5)
	require.Error(t, err)
	assert.Nil(t, usage)
	assert.Contains(t, err.Error(), "failed to read api call usage")
}
