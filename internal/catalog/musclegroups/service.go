package musclegroups

import (
	"context"
	"fmt"

	"github.com/fitstack/catalog/internal/catalog/rules"
	"github.com/fitstack/catalog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=musclegroups_test

type muscleGroupsRepo interface {
	Add(ctx context.Context, mg MuscleGroup) (*MuscleGroup, error)
	Get(ctx context.Context, id int) (*MuscleGroup, error)
	List(ctx context.Context, pagination rules.Pagination) ([]MuscleGroup, int, error)
	Update(ctx context.Context, mg *MuscleGroup) error
	SoftDelete(ctx context.Context, id int) error
	ActiveNameExists(ctx context.Context, name string, excludeID int) (bool, error)
}

type Service struct {
	repo muscleGroupsRepo
}

func NewService(repo muscleGroupsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, req CreateMuscleGroupRequest) (_ *MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclegroups.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exists, err := s.repo.ActiveNameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("muscle group name check: %w", err)
	}
	if exists {
		return nil, &rules.NameConflictError{Entity: entityName, Name: req.Name}
	}

	mg, err := s.repo.Add(ctx, MuscleGroup{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("add muscle group: %w", err)
	}
	return mg, nil
}

func (s *Service) List(ctx context.Context, pagination rules.Pagination) (_ *ListResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclegroups.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	muscleGroups, total, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}

	return &ListResponse{
		Data: muscleGroups,
		Meta: pagination.MetaFor(total),
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclegroups.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	mg, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get muscle group: %w", err)
	}
	return mg, nil
}

func (s *Service) Update(ctx context.Context, id int, req UpdateMuscleGroupRequest) (_ *MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclegroups.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get muscle group: %w", err)
	}

	if req.Name != nil && *req.Name != current.Name {
		exists, err := s.repo.ActiveNameExists(ctx, *req.Name, id)
		if err != nil {
			return nil, fmt.Errorf("muscle group name check: %w", err)
		}
		if exists {
			return nil, &rules.NameConflictError{Entity: entityName, Name: *req.Name}
		}
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("update muscle group: %w", err)
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int) (_ *DeleteResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.musclegroups.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return nil, fmt.Errorf("soft delete muscle group: %w", err)
	}

	return &DeleteResponse{
		ID:      id,
		Message: "muscle group deleted successfully",
	}, nil
}
