package exercises

import (
	"context"
	"fmt"

	"github.com/fitstack/catalog/internal/catalog/rules"
	"github.com/fitstack/catalog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, e Exercise, muscleGroupIDs, equipmentIDs []int) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context, pagination rules.Pagination) ([]Exercise, int, error)
	Update(ctx context.Context, e *Exercise, muscleGroupIDs, equipmentIDs *[]int) error
	Rate(ctx context.Context, id int, rating rules.Rating) (*rules.RateResponse, error)
	SoftDelete(ctx context.Context, id int) error
	ActiveNameExists(ctx context.Context, name string, excludeID int) (bool, error)
}

type muscleGroupRefs interface {
	FilterActiveIDs(ctx context.Context, ids []int) ([]int, error)
}

type equipmentRefs interface {
	FilterActiveIDs(ctx context.Context, ids []int) ([]int, error)
}

type Service struct {
	repo         exercisesRepo
	muscleGroups muscleGroupRefs
	equipments   equipmentRefs
}

func NewService(repo exercisesRepo, muscleGroups muscleGroupRefs, equipments equipmentRefs) *Service {
	return &Service{
		repo:         repo,
		muscleGroups: muscleGroups,
		equipments:   equipments,
	}
}

func (s *Service) Create(ctx context.Context, req CreateExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !req.Level.Valid() {
		return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid exercise level: %s", req.Level)}
	}
	if !req.Category.Valid() {
		return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid exercise category: %s", req.Category)}
	}

	exists, err := s.repo.ActiveNameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("exercise name check: %w", err)
	}
	if exists {
		return nil, &rules.NameConflictError{Entity: entityName, Name: req.Name}
	}

	if err := s.validateRefs(ctx, req.MuscleGroupIDs, req.EquipmentIDs); err != nil {
		return nil, err
	}

	e, err := s.repo.Add(ctx, Exercise{
		Name:           req.Name,
		Description:    req.Description,
		MediaURL:       req.MediaURL,
		Recommendation: req.Recommendation,
		Level:          req.Level,
		Category:       req.Category,
	}, req.MuscleGroupIDs, req.EquipmentIDs)
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, pagination rules.Pagination) (_ *ListResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	exercisesList, total, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	return &ListResponse{
		Data: exercisesList,
		Meta: pagination.MetaFor(total),
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id int, req UpdateExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	if req.Name != nil && *req.Name != current.Name {
		exists, err := s.repo.ActiveNameExists(ctx, *req.Name, id)
		if err != nil {
			return nil, fmt.Errorf("exercise name check: %w", err)
		}
		if exists {
			return nil, &rules.NameConflictError{Entity: entityName, Name: *req.Name}
		}
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.MediaURL != nil {
		current.MediaURL = *req.MediaURL
	}
	if req.Recommendation != nil {
		current.Recommendation = *req.Recommendation
	}
	if req.Level != nil {
		if !req.Level.Valid() {
			return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid exercise level: %s", *req.Level)}
		}
		current.Level = *req.Level
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid exercise category: %s", *req.Category)}
		}
		current.Category = *req.Category
	}

	var muscleGroupIDs, equipmentIDs []int
	if req.MuscleGroupIDs != nil {
		muscleGroupIDs = *req.MuscleGroupIDs
	}
	if req.EquipmentIDs != nil {
		equipmentIDs = *req.EquipmentIDs
	}
	if err := s.validateRefs(ctx, muscleGroupIDs, equipmentIDs); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, current, req.MuscleGroupIDs, req.EquipmentIDs); err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	return current, nil
}

func (s *Service) Rate(ctx context.Context, req rules.RateRequest) (_ *rules.RateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Rating.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.repo.Rate(ctx, req.ID, req.Rating)
	if err != nil {
		return nil, fmt.Errorf("rate exercise: %w", err)
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id int) (_ *DeleteResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return nil, fmt.Errorf("soft delete exercise: %w", err)
	}

	return &DeleteResponse{
		ID:      id,
		Message: "exercise deleted successfully",
	}, nil
}

func (s *Service) validateRefs(ctx context.Context, muscleGroupIDs, equipmentIDs []int) error {
	if len(muscleGroupIDs) > 0 {
		active, err := s.muscleGroups.FilterActiveIDs(ctx, muscleGroupIDs)
		if err != nil {
			return fmt.Errorf("check muscle group refs: %w", err)
		}
		if missing := rules.MissingIDs(muscleGroupIDs, active); len(missing) > 0 {
			return &rules.InvalidReferenceError{Entity: "muscle group", MissingIDs: missing}
		}
	}
	if len(equipmentIDs) > 0 {
		active, err := s.equipments.FilterActiveIDs(ctx, equipmentIDs)
		if err != nil {
			return fmt.Errorf("check equipment refs: %w", err)
		}
		if missing := rules.MissingIDs(equipmentIDs, active); len(missing) > 0 {
			return &rules.InvalidReferenceError{Entity: "equipment", MissingIDs: missing}
		}
	}
	return nil
}
