package equipment

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=equipment_test

type equipmentService interface {
	Create(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error)
	List(ctx context.Context, pagination rules.Pagination) (*ListResponse, error)
	Get(ctx context.Context, id int) (*Equipment, error)
	Update(ctx context.Context, id int, req UpdateEquipmentRequest) (*Equipment, error)
	Rate(ctx context.Context, req rules.RateRequest) (*rules.RateResponse, error)
	Delete(ctx context.Context, id int) (*DeleteResponse, error)
}

type Handler struct {
	service        equipmentService
	metricsManager *metrics.Manager
}

func NewHandler(service equipmentService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create equipment, unmarshal json params: %s", err)
		http.Error(w, "create equipment failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, equipment name empty", http.StatusBadRequest)
		return
	}

	e, err := handler.service.Create(ctx, req)
	if err != nil {
		log.Errorf("failed to create equipment [%s]: %s", req.Name, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	eJson, err := json.Marshal(e)
	if err != nil {
		log.Errorf("failed to marshal created equipment: %s", err)
		http.Error(w, "error, failed to create equipment", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntitiesCreated.WithLabelValues("equipment").Inc()
	log.Debugf("new equipment created: %s", eJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, eJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.list")
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
		log.Errorf("list equipment error: %s", err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	listRespJson, err := json.Marshal(listResp)
	if err != nil {
		log.Errorf("marshal equipment error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.get")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := handler.service.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get equipment %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	eJson, err := json.Marshal(e)
	if err != nil {
		log.Errorf("failed to marshal equipment: %s", err)
		http.Error(w, "failed to marshal equipment", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, eJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.update")
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

	var req UpdateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update equipment, unmarshal json params: %s", err)
		http.Error(w, "update equipment failed", http.StatusBadRequest)
		return
	}

	e, err := handler.service.Update(ctx, id, req)
	if err != nil {
		log.Errorf("failed to update equipment %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	eJson, err := json.Marshal(e)
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("equipment updated: [%d] [%s]", e.ID, e.Name)
	pkg.WriteJSONResponseOK(w, string(eJson))
}

func (handler *Handler) HandleRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.rate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req rules.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("rate equipment, unmarshal json params: %s", err)
		http.Error(w, "rate equipment failed", http.StatusBadRequest)
		return
	}
	if req.ID <= 0 {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	rateResp, err := handler.service.Rate(ctx, req)
	if err != nil {
		log.Errorf("failed to rate equipment %d: %s", req.ID, err)
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
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.delete")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleteResp, err := handler.service.Delete(ctx, id)
	if err != nil {
		log.Errorf("failed to delete equipment %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	deleteRespJson, err := json.Marshal(deleteResp)
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntitiesDeleted.WithLabelValues("equipment").Inc()
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
