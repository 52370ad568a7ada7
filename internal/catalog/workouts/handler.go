package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Create(ctx context.Context, req CreateWorkoutRequest) (*Workout, error)
	List(ctx context.Context, pagination rules.Pagination) (*ListResponse, error)
	Get(ctx context.Context, id int) (*Workout, error)
	GetByIDs(ctx context.Context, ids []int) ([]Workout, error)
	GetExerciseInWorkout(ctx context.Context, id int) (*ExerciseInWorkout, error)
	Update(ctx context.Context, id int, req UpdateWorkoutRequest) (*Workout, error)
	Rate(ctx context.Context, req rules.RateRequest) (*rules.RateResponse, error)
	Delete(ctx context.Context, id int) (*DeleteResponse, error)
}

type Handler struct {
	service        workoutsService
	metricsManager *metrics.Manager
}

func NewHandler(service workoutsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create workout, unmarshal json params: %s", err)
		http.Error(w, "create workout failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, workout name empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Create(ctx, req)
	if err != nil {
		log.Errorf("failed to create workout [%s]: %s", req.Name, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal created workout: %s", err)
		http.Error(w, "error, failed to create workout", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntitiesCreated.WithLabelValues("workout").Inc()
	log.Debugf("new workout created: %s", workoutJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
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
		log.Errorf("list workouts error: %s", err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	listRespJson, err := json.Marshal(listResp)
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleGetByIDs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getbyids")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ByIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("get workouts by ids, unmarshal json params: %s", err)
		http.Error(w, "get workouts by ids failed", http.StatusBadRequest)
		return
	}

	workoutsList, err := handler.service.GetByIDs(ctx, req.IDs)
	if err != nil {
		log.Errorf("failed to get workouts by ids %v: %s", req.IDs, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	workoutsJson, err := json.Marshal(workoutsList)
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "failed to marshal workouts", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}

func (handler *Handler) HandleGetExerciseInWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getexerciseinworkout")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	eiw, err := handler.service.GetExerciseInWorkout(ctx, id)
	if err != nil {
		log.Errorf("failed to get exercise in workout %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	eiwJson, err := json.Marshal(eiw)
	if err != nil {
		log.Errorf("failed to marshal exercise in workout: %s", err)
		http.Error(w, "failed to marshal exercise in workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, eiwJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
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

	var req UpdateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Update(ctx, id, req)
	if err != nil {
		log.Errorf("failed to update workout %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout updated: [%d] [%s]", workout.ID, workout.Name)
	pkg.WriteJSONResponseOK(w, string(workoutJson))
}

func (handler *Handler) HandleRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.rate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req rules.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("rate workout, unmarshal json params: %s", err)
		http.Error(w, "rate workout failed", http.StatusBadRequest)
		return
	}
	if req.ID <= 0 {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	rateResp, err := handler.service.Rate(ctx, req)
	if err != nil {
		log.Errorf("failed to rate workout %d: %s", req.ID, err)
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
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, err := pkg.IDFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleteResp, err := handler.service.Delete(ctx, id)
	if err != nil {
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, rules.PublicMessage(err), rules.HTTPStatus(err))
		return
	}

	deleteRespJson, err := json.Marshal(deleteResp)
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntitiesDeleted.WithLabelValues("workout").Inc()
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
