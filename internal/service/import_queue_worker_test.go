package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menuflow/internal/domain"
	"menuflow/internal/service"
	"menuflow/mocks"
)

func pendingJob(t *testing.T) domain.ImportJob {
	t.Helper()
	plan, err := json.Marshal(domain.ResolutionPlan{MenuName: "m", Entries: []domain.PlanEntry{
		{CandidateIndex: 0, Action: domain.ActionSkip, Item: domain.ParsedMenuItem{Name: "A"}},
	}})
	require.NoError(t, err)
	return domain.ImportJob{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		MenuID:       uuid.New(),
		MenuName:     "m",
		Status:       domain.JobStatusRunning,
		Plan:         plan,
	}
}

// executionRecorder stands in for the import service so the worker test can
// observe which jobs were dispatched without touching a repository.
type executionRecorder struct {
	mu       sync.Mutex
	executed []uuid.UUID
	done     chan struct{}
	want     int
}

func newExecutionRecorder(want int) *executionRecorder {
	return &executionRecorder{done: make(chan struct{}), want: want}
}

func (r *executionRecorder) Commit(ctx context.Context, input *service.CommitInput) (*service.CommitOutcome, error) {
	return nil, nil
}

func (r *executionRecorder) GetJob(ctx context.Context, restaurantID, jobID uuid.UUID) (*domain.ImportJob, error) {
	return nil, domain.ErrJobNotFound
}

func (r *executionRecorder) ExecuteJob(ctx context.Context, job *domain.ImportJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executed = append(r.executed, job.ID)
	if len(r.executed) == r.want {
		close(r.done)
	}
}

func (r *executionRecorder) executedIDs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uuid.UUID, len(r.executed))
	copy(out, r.executed)
	return out
}

func TestImportQueueWorker_DispatchesClaimedJobs(t *testing.T) {
	jobRepo := new(mocks.MockImportJobRepo)
	recorder := newExecutionRecorder(2)
	jobA, jobB := pendingJob(t), pendingJob(t)

	jobRepo.On("ClaimPending", mock.Anything, 2).
		Return([]domain.ImportJob{jobA, jobB}, nil).Once()
	jobRepo.On("ClaimPending", mock.Anything, mock.AnythingOfType("int")).
		Return([]domain.ImportJob{}, nil)

	worker := service.NewImportQueueWorker(jobRepo, recorder, service.ImportQueueConfig{
		PollInterval: 10 * time.Millisecond,
		Concurrency:  2,
	})

	ctx, cancel := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(workerDone)
	}()

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never dispatched the claimed jobs")
	}
	cancel()
	<-workerDone

	ids := recorder.executedIDs()
	assert.ElementsMatch(t, []uuid.UUID{jobA.ID, jobB.ID}, ids)
}

func TestImportQueueWorker_ClaimsAtMostConcurrencyJobs(t *testing.T) {
	jobRepo := new(mocks.MockImportJobRepo)
	recorder := newExecutionRecorder(1)
	job := pendingJob(t)

	jobRepo.On("ClaimPending", mock.Anything, 1).
		Return([]domain.ImportJob{job}, nil).Once()
	jobRepo.On("ClaimPending", mock.Anything, mock.AnythingOfType("int")).
		Return([]domain.ImportJob{}, nil)

	worker := service.NewImportQueueWorker(jobRepo, recorder, service.ImportQueueConfig{
		PollInterval: 10 * time.Millisecond,
		Concurrency:  1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(workerDone)
	}()

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never dispatched the claimed job")
	}
	cancel()
	<-workerDone

	jobRepo.AssertCalled(t, "ClaimPending", mock.Anything, 1)
}

func TestImportQueueWorker_StopsOnCancel(t *testing.T) {
	jobRepo := new(mocks.MockImportJobRepo)
	recorder := newExecutionRecorder(1)

	jobRepo.On("ClaimPending", mock.Anything, mock.AnythingOfType("int")).
		Return([]domain.ImportJob{}, nil).Maybe()

	worker := service.NewImportQueueWorker(jobRepo, recorder, service.ImportQueueConfig{
		PollInterval: 10 * time.Millisecond,
		Concurrency:  1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(workerDone)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-workerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
	assert.Empty(t, recorder.executedIDs())
}
