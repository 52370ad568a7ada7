package trainingplans

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainingplans_test

type trainingPlansService interface {
	Create(ctx context.Context, req CreateTrainingPlanRequest) (*TrainingPlan, error)
	List(ctx context.Context, pagination rules.Pagination) (*ListResponse, error)
	Get(ctx context.Context, id int) (*TrainingPlan, error)
	GetByIDs(ctx context.Context, ids []int) ([]TrainingPlan, error)
	Update(ctx context.Context, id int, req UpdateTrainingPlanRequest) (*TrainingPlan, error)
	Rate(ctx context.Context, req rules.RateRequest) (*rules.RateResponse, error)
	Delete(ctx context.Context, id int) (*DeleteResponse, error)
}

type Handler struct {
	service        trainingPlansService
	metricsManager *metrics.Manager
}

func NewHandler(service trainingPlansService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplans.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateTrainingPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create training plan, unmarshal json params: %s", err)
		http.Error(w, "create training plan failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, training plan name empty", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.Create(ctx, req)
	if err != nil {
		log.Errorf("failed to create training plan [%s]: %s", req.Name, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal created training plan: %s", err)
		http.Error(w, "error, failed to create training plan", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntitiesCreated.WithLabelValues("training_plan").Inc()
	log.Debugf("new training plan created: %s", planJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplans.list")
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
		log.Errorf("list training plans error: %s", err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	listRespJson, err := json.Marshal(listResp)
	if err != nil {
		log.Errorf("marshal training plans error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplans.get")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := handler.service.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get training plan %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal training plan: %s", err)
		http.Error(w, "failed to marshal training plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusOK)
}

func (handler *Handler) HandleGetByIDs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplans.getbyids")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ByIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("get training plans by ids, unmarshal json params: %s", err)
		http.Error(w, "get training plans by ids failed", http.StatusBadRequest)
		return
	}

	plans, err := handler.service.GetByIDs(ctx, req.IDs)
	if err != nil {
		log.Errorf("failed to get training plans by ids %v: %s", req.IDs, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	plansJson, err := json.Marshal(plans)
	if err != nil {
		log.Errorf("failed to marshal training plans: %s", err)
		http.Error(w, "failed to marshal training plans", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, plansJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplans.update")
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

	var req UpdateTrainingPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update training plan, unmarshal json params: %s", err)
		http.Error(w, "update training plan failed", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.Update(ctx, id, req)
	if err != nil {
		log.Errorf("failed to update training plan %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("training plan updated: [%d] [%s]", plan.ID, plan.Name)
	pkg.WriteJSONResponseOK(w, string(planJson))
}

func (handler *Handler) HandleRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplans.rate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req rules.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("rate training plan, unmarshal json params: %s", err)
		http.Error(w, "rate training plan failed", http.StatusBadRequest)
		return
	}
	if req.ID <= 0 {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	rateResp, err := handler.service.Rate(ctx, req)
	if err != nil {
		log.Errorf("failed to rate training plan %d: %s", req.ID, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	rateRespJson, err := json.Marshal(rateResp)
	if err != nil {
		log.Errorf("failed to marshal rate response: %s", err)
		http.Error(w, "failed to marshal rate response", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterRatings.Inc()
	pkg.WriteJSONResponseOK(w, string(rateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplans.delete")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleteResp, err := handler.service.Delete(ctx, id)
	if err != nil {
		log.Errorf("failed to delete training plan %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	deleteRespJson, err := json.Marshal(deleteResp)
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntitiesDeleted.WithLabelValues("training_plan").Inc()
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
