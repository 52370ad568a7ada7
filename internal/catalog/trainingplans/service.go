package trainingplans

import (
	"context"
	"fmt"

	"github.com/fitstack/catalog/internal/catalog/rules"
	"github.com/fitstack/catalog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=trainingplans_test

type trainingPlansRepo interface {
	Add(ctx context.Context, tp TrainingPlan, workoutIDs []int) (*TrainingPlan, error)
	Get(ctx context.Context, id int) (*TrainingPlan, error)
	GetByIDs(ctx context.Context, ids []int) ([]TrainingPlan, error)
	List(ctx context.Context, pagination rules.Pagination) ([]TrainingPlan, int, error)
	Update(ctx context.Context, tp *TrainingPlan, workoutIDs *[]int) error
	Rate(ctx context.Context, id int, rating rules.Rating) (*rules.RateResponse, error)
	SoftDelete(ctx context.Context, id int) error
	ActiveNameExists(ctx context.Context, name string, excludeID int) (bool, error)
}

type workoutRefs interface {
	FilterActiveIDs(ctx context.Context, ids []int) ([]int, error)
}

type Service struct {
	repo     trainingPlansRepo
	workouts workoutRefs
}

func NewService(repo trainingPlansRepo, workouts workoutRefs) *Service {
	return &Service{
		repo:     repo,
		workouts: workouts,
	}
}

func (s *Service) Create(ctx context.Context, req CreateTrainingPlanRequest) (_ *TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainingplans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !req.Level.Valid() {
		return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid training plan level: %s", req.Level)}
	}
	if req.StartDate.IsZero() {
		return nil, &rules.ValidationError{Reason: "training plan start date missing"}
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, &rules.ValidationError{Reason: "training plan end date before start date"}
	}

	exists, err := s.repo.ActiveNameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("training plan name check: %w", err)
	}
	if exists {
		return nil, &rules.NameConflictError{Entity: entityName, Name: req.Name}
	}

	if err := s.validateWorkoutRefs(ctx, req.WorkoutIDs); err != nil {
		return nil, err
	}

	tp, err := s.repo.Add(ctx, TrainingPlan{
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}, req.WorkoutIDs)
	if err != nil {
		return nil, fmt.Errorf("add training plan: %w", err)
	}
	return tp, nil
}

func (s *Service) List(ctx context.Context, pagination rules.Pagination) (_ *ListResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainingplans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	plans, total, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, fmt.Errorf("list training plans: %w", err)
	}

	return &ListResponse{
		Data: plans,
		Meta: pagination.MetaFor(total),
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainingplans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tp, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get training plan: %w", err)
	}
	return tp, nil
}

func (s *Service) GetByIDs(ctx context.Context, ids []int) (_ []TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainingplans.getbyids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(ids) == 0 {
		return nil, &rules.ValidationError{Reason: "ids list empty"}
	}

	plans, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get training plans by ids: %w", err)
	}
	return plans, nil
}

func (s *Service) Update(ctx context.Context, id int, req UpdateTrainingPlanRequest) (_ *TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainingplans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get training plan: %w", err)
	}

	if req.Name != nil && *req.Name != current.Name {
		exists, err := s.repo.ActiveNameExists(ctx, *req.Name, id)
		if err != nil {
			return nil, fmt.Errorf("training plan name check: %w", err)
		}
		if exists {
			return nil, &rules.NameConflictError{Entity: entityName, Name: *req.Name}
		}
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Level != nil {
		if !req.Level.Valid() {
			return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid training plan level: %s", *req.Level)}
		}
		current.Level = *req.Level
	}
	if req.StartDate != nil {
		current.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		current.EndDate = req.EndDate
	}
	if current.EndDate != nil && current.EndDate.Before(current.StartDate) {
		return nil, &rules.ValidationError{Reason: "training plan end date before start date"}
	}

	if req.WorkoutIDs != nil {
		if err := s.validateWorkoutRefs(ctx, *req.WorkoutIDs); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, current, req.WorkoutIDs); err != nil {
		return nil, fmt.Errorf("update training plan: %w", err)
	}
	return current, nil
}

func (s *Service) Rate(ctx context.Context, req rules.RateRequest) (_ *rules.RateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainingplans.rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Rating.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.repo.Rate(ctx, req.ID, req.Rating)
	if err != nil {
		return nil, fmt.Errorf("rate training plan: %w", err)
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id int) (_ *DeleteResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainingplans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return nil, fmt.Errorf("soft delete training plan: %w", err)
	}

	return &DeleteResponse{
		ID:      id,
		Message: "training plan deleted successfully",
	}, nil
}

func (s *Service) validateWorkoutRefs(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	active, err := s.workouts.FilterActiveIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("check workout refs: %w", err)
	}
	if missing := rules.MissingIDs(ids, active); len(missing) > 0 {
		return &rules.InvalidReferenceError{Entity: "workout", MissingIDs: missing}
	}
	return nil
}
