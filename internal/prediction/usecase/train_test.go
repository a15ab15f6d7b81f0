package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"intelligent-task-management/internal/model"
	"intelligent-task-management/internal/prediction"
	predfile "intelligent-task-management/internal/prediction/repository/file"
)

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

func newTestUseCase(t *testing.T, dir string) *implUseCase {
	t.Helper()

	store, err := predfile.New(&mockLogger{}, dir)
	if err != nil {
		t.Fatalf("file.New: %v", err)
	}
	uc, err := New(context.Background(), &mockLogger{}, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	uc.now = func() time.Time {
		return time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	}
	return uc
}

func minutes(m int) *int { return &m }

// trainingRecords builds two well separated clusters so a trained model
// should recover the labels exactly.
func trainingRecords(n int) []model.TaskRecord {
	records := make([]model.TaskRecord, 0, n)
	for i := 0; i < n; i++ {
		rec := model.TaskRecord{
			Title:    "task",
			Category: model.CategoryWork,
			Status:   model.StatusPending,
		}
		if i%2 == 0 {
			rec.Priority = 5
			rec.ComplexityScore = 9
			rec.SentimentScore = -0.8
			rec.Keywords = []string{"deploy", "release", "server", "urgent"}
			rec.ActualDuration = minutes(120)
		} else {
			rec.Priority = 1
			rec.ComplexityScore = 1
			rec.SentimentScore = 0.7
			rec.Keywords = []string{"coffee"}
			rec.ActualDuration = minutes(30)
		}
		records = append(records, rec)
	}
	return records
}

func TestPredictPriority_Untrained(t *testing.T) {
	uc := newTestUseCase(t, t.TempDir())

	_, err := uc.PredictPriority(context.Background(), model.TaskRecord{Title: "anything"})
	if !errors.Is(err, prediction.ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got %v", err)
	}
}

func TestTrainPriority_Empty(t *testing.T) {
	uc := newTestUseCase(t, t.TempDir())

	acc, err := uc.TrainPriority(context.Background(), nil)
	if err != nil {
		t.Fatalf("TrainPriority: %v", err)
	}
	if acc != 0 {
		t.Fatalf("expected 0 accuracy for no records, got %v", acc)
	}
	if _, err := uc.PredictPriority(context.Background(), model.TaskRecord{}); !errors.Is(err, prediction.ErrModelNotTrained) {
		t.Fatalf("training on no records must not fit a model, got %v", err)
	}
}

func TestTrainPriority_SeparableData(t *testing.T) {
	uc := newTestUseCase(t, t.TempDir())
	records := trainingRecords(40)

	acc, err := uc.TrainPriority(context.Background(), records)
	if err != nil {
		t.Fatalf("TrainPriority: %v", err)
	}
	if acc < 0.9 {
		t.Fatalf("expected high accuracy on separable data, got %v", acc)
	}

	got, err := uc.PredictPriority(context.Background(), records[0])
	if err != nil {
		t.Fatalf("PredictPriority: %v", err)
	}
	if got != 5 {
		t.Errorf("expected priority 5 for the urgent cluster, got %d", got)
	}

	got, err = uc.PredictPriority(context.Background(), records[1])
	if err != nil {
		t.Fatalf("PredictPriority: %v", err)
	}
	if got != 1 {
		t.Errorf("expected priority 1 for the easy cluster, got %d", got)
	}
}

func TestTrainPriority_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	records := trainingRecords(40)

	trained := newTestUseCase(t, dir)
	if _, err := trained.TrainPriority(context.Background(), records); err != nil {
		t.Fatalf("TrainPriority: %v", err)
	}
	want, err := trained.PredictPriority(context.Background(), records[0])
	if err != nil {
		t.Fatalf("PredictPriority: %v", err)
	}

	// A fresh instance over the same directory must load the
	// persisted artifacts and predict identically.
	reloaded := newTestUseCase(t, dir)
	got, err := reloaded.PredictPriority(context.Background(), records[0])
	if err != nil {
		t.Fatalf("PredictPriority after reload: %v", err)
	}
	if got != want {
		t.Errorf("reloaded model predicted %d, want %d", got, want)
	}
}

func TestTrainDuration_FiltersAndPredictsTrainedLabels(t *testing.T) {
	uc := newTestUseCase(t, t.TempDir())
	records := trainingRecords(40)
	// Records without an actual duration are not usable for training.
	records = append(records, model.TaskRecord{Title: "no duration", Priority: 3})

	acc, err := uc.TrainDuration(context.Background(), records)
	if err != nil {
		t.Fatalf("TrainDuration: %v", err)
	}
	if acc < 0.9 {
		t.Fatalf("expected high accuracy on separable data, got %v", acc)
	}

	got, err := uc.PredictDuration(context.Background(), records[0])
	if err != nil {
		t.Fatalf("PredictDuration: %v", err)
	}
	// The duration model votes over labels seen in training, so the
	// output is always one of the observed durations.
	if got != 120 && got != 30 {
		t.Errorf("predicted duration %d is not one of the trained labels", got)
	}
}

func TestTrainDuration_NoUsableRecords(t *testing.T) {
	uc := newTestUseCase(t, t.TempDir())

	acc, err := uc.TrainDuration(context.Background(), []model.TaskRecord{
		{Title: "a", Priority: 2},
		{Title: "b", Priority: 4},
	})
	if err != nil {
		t.Fatalf("TrainDuration: %v", err)
	}
	if acc != 0 {
		t.Fatalf("expected 0 accuracy without durations, got %v", acc)
	}
}
