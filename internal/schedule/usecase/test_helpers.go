package usecase

import (
	"context"

	"intelligent-task-management/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockPredictor returns canned predictions keyed by task title, or a
// fixed error for every call.
type mockPredictor struct {
	priorities map[string]int
	durations  map[string]int
	err        error
}

func (m *mockPredictor) TrainPriority(ctx context.Context, records []model.TaskRecord) (float64, error) {
	return 0, nil
}

func (m *mockPredictor) TrainDuration(ctx context.Context, records []model.TaskRecord) (float64, error) {
	return 0, nil
}

func (m *mockPredictor) PredictPriority(ctx context.Context, record model.TaskRecord) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.priorities[record.Title], nil
}

func (m *mockPredictor) PredictDuration(ctx context.Context, record model.TaskRecord) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.durations[record.Title], nil
}

func newTestUseCase(predictor *mockPredictor) *implUseCase {
	return New(&mockLogger{}, predictor, nil)
}
