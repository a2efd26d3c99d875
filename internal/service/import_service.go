package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"menuflow/internal/config"
	"menuflow/internal/domain"
	"menuflow/internal/port"
)

// CommitInput is the DTO for commit requests.
type CommitInput struct {
	RestaurantID uuid.UUID
	MenuID       uuid.UUID
	Plan         *domain.ResolutionPlan
}

// CommitOutcome is either a synchronously completed result or a background
// job handle, never both.
type CommitOutcome struct {
	Result *domain.ImportResult
	Job    *domain.ImportJob
}

// ImportService applies approved resolution plans to the menu repository.
type ImportService interface {
	Commit(ctx context.Context, input *CommitInput) (*CommitOutcome, error)
	GetJob(ctx context.Context, restaurantID, jobID uuid.UUID) (*domain.ImportJob, error)
	ExecuteJob(ctx context.Context, job *domain.ImportJob)
}

type importService struct {
	menuRepo port.MenuRepository
	jobRepo  port.ImportJobRepository
	notifier port.ImportNotifier
	cfg      config.ImportConfig
}

// NewImportService creates a new ImportService implementation.
func NewImportService(
	menuRepo port.MenuRepository,
	jobRepo port.ImportJobRepository,
	notifier port.ImportNotifier,
	cfg config.ImportConfig,
) ImportService {
	return &importService{
		menuRepo: menuRepo,
		jobRepo:  jobRepo,
		notifier: notifier,
		cfg:      cfg,
	}
}

// Commit validates the plan as a whole, then either executes it in-line
// (small plans) or persists a pending job for the background worker. Plan
// validation failures reject the commit entirely: zero writes happen.
func (s *importService) Commit(ctx context.Context, input *CommitInput) (*CommitOutcome, error) {
	if err := validatePlan(input.Plan); err != nil {
		return nil, err
	}
	if _, err := s.menuRepo.GetMenu(ctx, input.RestaurantID, input.MenuID); err != nil {
		return nil, err
	}

	if writeActions(input.Plan) <= s.cfg.SyncThreshold {
		result, err := s.executePlan(ctx, input.RestaurantID, input.MenuID, input.Plan)
		if err != nil {
			return nil, err
		}
		return &CommitOutcome{Result: result}, nil
	}

	planJSON, err := json.Marshal(input.Plan)
	if err != nil {
		return nil, fmt.Errorf("importService.Commit: marshaling plan: %w", err)
	}
	job := &domain.ImportJob{
		ID:               uuid.New(),
		RestaurantID:     input.RestaurantID,
		MenuID:           input.MenuID,
		MenuName:         input.Plan.MenuName,
		Status:           domain.JobStatusPending,
		Plan:             planJSON,
		CreatedItemIDs:   domain.UUIDList{},
		FailedCandidates: domain.FailedCandidateList{},
		ProcessingNotes:  domain.StringList{},
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return &CommitOutcome{Job: job}, nil
}

func (s *importService) GetJob(ctx context.Context, restaurantID, jobID uuid.UUID) (*domain.ImportJob, error) {
	return s.jobRepo.GetByID(ctx, restaurantID, jobID)
}

// ExecuteJob runs a claimed job to its terminal state. Per-item failures
// never fail the job; only an infrastructure-level error does, and items
// already applied stay committed (the runner is not transactional).
func (s *importService) ExecuteJob(ctx context.Context, job *domain.ImportJob) {
	var plan domain.ResolutionPlan
	if err := json.Unmarshal(job.Plan, &plan); err != nil {
		s.finishFailed(ctx, job, fmt.Sprintf("stored plan is unreadable: %v", err))
		return
	}

	result, err := s.executePlan(ctx, job.RestaurantID, job.MenuID, &plan)
	if err != nil {
		s.finishFailed(ctx, job, err.Error())
		return
	}

	job.CreatedItemIDs = result.CreatedItemIDs
	job.FailedCandidates = result.FailedCandidates
	job.ProcessingNotes = result.ProcessingNotes
	if job.FailedCandidates == nil {
		job.FailedCandidates = domain.FailedCandidateList{}
	}
	if job.ProcessingNotes == nil {
		job.ProcessingNotes = domain.StringList{}
	}
	if err := s.jobRepo.MarkCompleted(ctx, job); err != nil {
		log.Printf("importService: marking job %s completed failed: %v", job.ID, err)
		return
	}
	job.Status = domain.JobStatusCompleted
	s.notify(ctx, job, result.ImportedItems, result.FailedItems, false)
}

func (s *importService) finishFailed(ctx context.Context, job *domain.ImportJob, reason string) {
	if err := s.jobRepo.MarkFailed(ctx, job.ID, reason); err != nil {
		log.Printf("importService: marking job %s failed failed: %v", job.ID, err)
		return
	}
	job.Status = domain.JobStatusFailed
	job.Error = reason
	s.notify(ctx, job, 0, 0, true)
}

func (s *importService) notify(ctx context.Context, job *domain.ImportJob, imported, failed int, jobFailed bool) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.ImportCompleted(ctx, port.ImportCompletedEvent{
		JobID:         job.ID,
		RestaurantID:  job.RestaurantID,
		MenuID:        job.MenuID,
		MenuName:      job.MenuName,
		ImportedItems: imported,
		FailedItems:   failed,
		Failed:        jobFailed,
	})
	if err != nil {
		log.Printf("importService: import-completed notification for job %s failed: %v", job.ID, err)
	}
}

// executePlan applies the plan entry by entry. A rejected write records a
// failed candidate and execution continues; an unreachable repository
// aborts with an error so the caller can fail the job.
func (s *importService) executePlan(ctx context.Context, restaurantID, menuID uuid.UUID, plan *domain.ResolutionPlan) (*domain.ImportResult, error) {
	result := &domain.ImportResult{
		MenuID:           menuID,
		MenuName:         plan.MenuName,
		TotalItems:       len(plan.Entries),
		CreatedItemIDs:   []uuid.UUID{},
		FailedCandidates: []domain.FailedCandidate{},
		ProcessingNotes:  []string{},
	}

	for i := range plan.Entries {
		entry := &plan.Entries[i]
		switch entry.Action {
		case domain.ActionSkip:
			result.ProcessingNotes = append(result.ProcessingNotes,
				fmt.Sprintf("candidate %d (%s): skipped", entry.CandidateIndex, entry.Item.Name))

		case domain.ActionCreate:
			id, err := s.menuRepo.CreateItem(ctx, restaurantID, menuID, &entry.Item)
			if err != nil {
				if errors.Is(err, domain.ErrRepositoryUnavailable) {
					return nil, err
				}
				result.FailedCandidates = append(result.FailedCandidates,
					domain.FailedCandidate{Index: entry.CandidateIndex, Reason: err.Error()})
				continue
			}
			result.CreatedItemIDs = append(result.CreatedItemIDs, id)
			result.ImportedItems++

		case domain.ActionUpdate:
			err := s.menuRepo.UpdateItem(ctx, restaurantID, *entry.ExistingItemID, &entry.Item)
			if err != nil {
				if errors.Is(err, domain.ErrRepositoryUnavailable) {
					return nil, err
				}
				result.FailedCandidates = append(result.FailedCandidates,
					domain.FailedCandidate{Index: entry.CandidateIndex, Reason: err.Error()})
				continue
			}
			result.ImportedItems++
		}
	}

	result.FailedItems = len(result.FailedCandidates)
	return result, nil
}

// validatePlan rejects a plan in full before any write: every action must
// be one of create/skip/update (manual must have been resolved earlier),
// candidate indices must be unique and in range, and updates need a target.
func validatePlan(plan *domain.ResolutionPlan) error {
	if plan == nil || len(plan.Entries) == 0 {
		return domain.NewInvalidPlanError("plan has no entries")
	}
	seen := make(map[int]bool, len(plan.Entries))
	for i := range plan.Entries {
		entry := &plan.Entries[i]
		if entry.Action == domain.ActionManual {
			return domain.NewInvalidPlanError("candidate %d still has an unresolved manual action", entry.CandidateIndex)
		}
		if !domain.ValidPlanActions[entry.Action] {
			return domain.NewInvalidPlanError("candidate %d has unknown action %q", entry.CandidateIndex, entry.Action)
		}
		if entry.CandidateIndex < 0 || entry.CandidateIndex >= len(plan.Entries) {
			return domain.NewInvalidPlanError("candidate index %d is out of range", entry.CandidateIndex)
		}
		if seen[entry.CandidateIndex] {
			return domain.NewInvalidPlanError("candidate index %d appears more than once", entry.CandidateIndex)
		}
		seen[entry.CandidateIndex] = true
		if entry.Action == domain.ActionUpdate && entry.ExistingItemID == nil {
			return domain.NewInvalidPlanError("candidate %d has an update action without an existing item id", entry.CandidateIndex)
		}
	}
	return nil
}

// writeActions counts the entries that will actually touch the repository.
func writeActions(plan *domain.ResolutionPlan) int {
	n := 0
	for i := range plan.Entries {
		if plan.Entries[i].Action == domain.ActionCreate || plan.Entries[i].Action == domain.ActionUpdate {
			n++
		}
	}
	return n
}
