package workouts

import (
	"context"
	"fmt"

	"github.com/fitstack/catalog/internal/catalog/rules"
	"github.com/fitstack/catalog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, w Workout, exerciseInputs []ExerciseInWorkoutInput) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	GetByIDs(ctx context.Context, ids []int) ([]Workout, error)
	List(ctx context.Context, pagination rules.Pagination) ([]Workout, int, error)
	GetExerciseInWorkout(ctx context.Context, id int) (*ExerciseInWorkout, error)
	Update(ctx context.Context, w *Workout, exerciseInputs *[]ExerciseInWorkoutInput) error
	Rate(ctx context.Context, id int, rating rules.Rating) (*rules.RateResponse, error)
	SoftDelete(ctx context.Context, id int) error
	ActiveNameExists(ctx context.Context, name string, excludeID int) (bool, error)
}

type exerciseRefs interface {
	FilterActiveIDs(ctx context.Context, ids []int) ([]int, error)
}

type Service struct {
	repo      workoutsRepo
	exercises exerciseRefs
}

func NewService(repo workoutsRepo, exercises exerciseRefs) *Service {
	return &Service{
		repo:      repo,
		exercises: exercises,
	}
}

func (s *Service) Create(ctx context.Context, req CreateWorkoutRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !req.Level.Valid() {
		return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid workout level: %s", req.Level)}
	}
	if !req.Category.Valid() {
		return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid workout category: %s", req.Category)}
	}
	if err := validateExerciseInputs(req.Exercises); err != nil {
		return nil, err
	}

	exists, err := s.repo.ActiveNameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("workout name check: %w", err)
	}
	if exists {
		return nil, &rules.NameConflictError{Entity: entityName, Name: req.Name}
	}

	if err := s.validateExerciseRefs(ctx, req.Exercises); err != nil {
		return nil, err
	}

	w, err := s.repo.Add(ctx, Workout{
		Name:         req.Name,
		Description:  req.Description,
		Frequency:    req.Frequency,
		Duration:     req.Duration,
		Level:        req.Level,
		Category:     req.Category,
		TrainingType: req.TrainingType,
	}, req.Exercises)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}
	return w, nil
}

func (s *Service) List(ctx context.Context, pagination rules.Pagination) (_ *ListResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	workoutsList, total, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	return &ListResponse{
		Data: workoutsList,
		Meta: pagination.MetaFor(total),
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

func (s *Service) GetByIDs(ctx context.Context, ids []int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.getbyids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(ids) == 0 {
		return nil, &rules.ValidationError{Reason: "ids list empty"}
	}

	workoutsList, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get workouts by ids: %w", err)
	}
	return workoutsList, nil
}

func (s *Service) GetExerciseInWorkout(ctx context.Context, id int) (_ *ExerciseInWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.getexerciseinworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	eiw, err := s.repo.GetExerciseInWorkout(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get exercise in workout: %w", err)
	}
	return eiw, nil
}

func (s *Service) Update(ctx context.Context, id int, req UpdateWorkoutRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}

	if req.Name != nil && *req.Name != current.Name {
		exists, err := s.repo.ActiveNameExists(ctx, *req.Name, id)
		if err != nil {
			return nil, fmt.Errorf("workout name check: %w", err)
		}
		if exists {
			return nil, &rules.NameConflictError{Entity: entityName, Name: *req.Name}
		}
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Frequency != nil {
		current.Frequency = *req.Frequency
	}
	if req.Duration != nil {
		current.Duration = *req.Duration
	}
	if req.Level != nil {
		if !req.Level.Valid() {
			return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid workout level: %s", *req.Level)}
		}
		current.Level = *req.Level
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid workout category: %s", *req.Category)}
		}
		current.Category = *req.Category
	}
	if req.TrainingType != nil {
		current.TrainingType = *req.TrainingType
	}

	if req.Exercises != nil {
		if err := validateExerciseInputs(*req.Exercises); err != nil {
			return nil, err
		}
		if err := s.validateExerciseRefs(ctx, *req.Exercises); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, current, req.Exercises); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}
	return current, nil
}

func (s *Service) Rate(ctx context.Context, req rules.RateRequest) (_ *rules.RateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Rating.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.repo.Rate(ctx, req.ID, req.Rating)
	if err != nil {
		return nil, fmt.Errorf("rate workout: %w", err)
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id int) (_ *DeleteResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return nil, fmt.Errorf("soft delete workout: %w", err)
	}

	return &DeleteResponse{
		ID:      id,
		Message: "workout deleted successfully",
	}, nil
}

// validateExerciseInputs rejects duplicate order values before anything is
// written; the partial unique index is only the backstop.
func validateExerciseInputs(inputs []ExerciseInWorkoutInput) error {
	seen := make(map[int]struct{}, len(inputs))
	for _, in := range inputs {
		if in.ExerciseID <= 0 {
			return &rules.ValidationError{Reason: "exercise id missing in workout exercises"}
		}
		if _, ok := seen[in.Order]; ok {
			return &rules.ValidationError{
				Reason: fmt.Sprintf("duplicate exercise order value: %d", in.Order),
			}
		}
		seen[in.Order] = struct{}{}
	}
	return nil
}

func (s *Service) validateExerciseRefs(ctx context.Context, inputs []ExerciseInWorkoutInput) error {
	if len(inputs) == 0 {
		return nil
	}
	ids := make([]int, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ExerciseID)
	}
	active, err := s.exercises.FilterActiveIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("check exercise refs: %w", err)
	}
	if missing := rules.MissingIDs(ids, active); len(missing) > 0 {
		return &rules.InvalidReferenceError{Entity: "exercise", MissingIDs: missing}
	}
	return nil
}
