package equipment

import (
	"context"
	"fmt"

	"github.com/fitstack/catalog/internal/catalog/rules"
	"github.com/fitstack/catalog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=equipment_test

type equipmentRepo interface {
	Add(ctx context.Context, e Equipment) (*Equipment, error)
	Get(ctx context.Context, id int) (*Equipment, error)
	List(ctx context.Context, pagination rules.Pagination) ([]Equipment, int, error)
	Update(ctx context.Context, e *Equipment) error
	Rate(ctx context.Context, id int, rating rules.Rating) (*rules.RateResponse, error)
	SoftDelete(ctx context.Context, id int) error
	ActiveNameExists(ctx context.Context, name string, excludeID int) (bool, error)
}

type Service struct {
	repo equipmentRepo
}

func NewService(repo equipmentRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (_ *Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !req.Category.Valid() {
		return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid equipment category: %s", req.Category)}
	}
	if req.Status == "" {
		req.Status = StatusAvailable
	}
	if !req.Status.Valid() {
		return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid equipment status: %s", req.Status)}
	}

	exists, err := s.repo.ActiveNameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("equipment name check: %w", err)
	}
	if exists {
		return nil, &rules.NameConflictError{Entity: entityName, Name: req.Name}
	}

	e, err := s.repo.Add(ctx, Equipment{
		Name:        req.Name,
		Description: req.Description,
		MediaURL:    req.MediaURL,
		Category:    req.Category,
		Status:      req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("add equipment: %w", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, pagination rules.Pagination) (_ *ListResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	equipmentList, total, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	return &ListResponse{
		Data: equipmentList,
		Meta: pagination.MetaFor(total),
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id int, req UpdateEquipmentRequest) (_ *Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}

	if req.Name != nil && *req.Name != current.Name {
		exists, err := s.repo.ActiveNameExists(ctx, *req.Name, id)
		if err != nil {
			return nil, fmt.Errorf("equipment name check: %w", err)
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
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid equipment category: %s", *req.Category)}
		}
		current.Category = *req.Category
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, &rules.ValidationError{Reason: fmt.Sprintf("invalid equipment status: %s", *req.Status)}
		}
		current.Status = *req.Status
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("update equipment: %w", err)
	}
	return current, nil
}

func (s *Service) Rate(ctx context.Context, req rules.RateRequest) (_ *rules.RateResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Rating.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.repo.Rate(ctx, req.ID, req.Rating)
	if err != nil {
		return nil, fmt.Errorf("rate equipment: %w", err)
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id int) (_ *DeleteResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.equipment.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return nil, fmt.Errorf("soft delete equipment: %w", err)
	}

	return &DeleteResponse{
		ID:      id,
		Message: "equipment deleted successfully",
	}, nil
}
