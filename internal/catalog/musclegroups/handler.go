package musclegroups

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fitstack/catalog/internal/catalog/rules"
	"github.com/fitstack/catalog/internal/telemetry/metrics"
	"github.com/fitstack/catalog/internal/telemetry/tracing"
	"github.com/fitstack/catalog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=musclegroups_test

type muscleGroupsService interface {
	Create(ctx context.Context, req CreateMuscleGroupRequest) (*MuscleGroup, error)
	List(ctx context.Context, pagination rules.Pagination) (*ListResponse, error)
	Get(ctx context.Context, id int) (*MuscleGroup, error)
	Update(ctx context.Context, id int, req UpdateMuscleGroupRequest) (*MuscleGroup, error)
	Delete(ctx context.Context, id int) (*DeleteResponse, error)
}

type Handler struct {
	service        muscleGroupsService
	metricsManager *metrics.Manager
}

func NewHandler(service muscleGroupsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.musclegroups.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateMuscleGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create muscle group, unmarshal json params: %s", err)
		http.Error(w, "create muscle group failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, muscle group name empty", http.StatusBadRequest)
		return
	}

	mg, err := handler.service.Create(ctx, req)
	if err != nil {
		log.Errorf("failed to create muscle group [%s]: %s", req.Name, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	mgJson, err := json.Marshal(mg)
	if err != nil {
		log.Errorf("failed to marshal created muscle group: %s", err)
		http.Error(w, "error, failed to create muscle group", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntitiesCreated.WithLabelValues("muscle_group").Inc()
	log.Debugf("new muscle group created: %s", mgJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, mgJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.musclegroups.list")
	defer span.End()

	page, size, err := pkg.PageSizeFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	pagination := rules.Pagination{Page: page, Limit: size}
	if err := pagination.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	listResp, err := handler.service.List(ctx, pagination)
	if err != nil {
		log.Errorf("list muscle groups error: %s", err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	listRespJson, err := json.Marshal(listResp)
	if err != nil {
		log.Errorf("marshal muscle groups error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.musclegroups.get")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mg, err := handler.service.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get muscle group %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	mgJson, err := json.Marshal(mg)
	if err != nil {
		log.Errorf("failed to marshal muscle group: %s", err)
		http.Error(w, "failed to marshal muscle group", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, mgJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.musclegroups.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateMuscleGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update muscle group, unmarshal json params: %s", err)
		http.Error(w, "update muscle group failed", http.StatusBadRequest)
		return
	}

	mg, err := handler.service.Update(ctx, id, req)
	if err != nil {
		log.Errorf("failed to update muscle group %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	mgJson, err := json.Marshal(mg)
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("muscle group updated: [%d] [%s]", mg.ID, mg.Name)
	pkg.WriteJSONResponseOK(w, string(mgJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.musclegroups.delete")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleteResp, err := handler.service.Delete(ctx, id)
	if err != nil {
		log.Errorf("failed to delete muscle group %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	deleteRespJson, err := json.Marshal(deleteResp)
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntitiesDeleted.WithLabelValues("muscle_group").Inc()
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
