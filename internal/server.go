package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fitstack/catalog/internal/catalog/equipment"
	"github.com/fitstack/catalog/internal/catalog/exercises"
	"github.com/fitstack/catalog/internal/catalog/musclegroups"
	"github.com/fitstack/catalog/internal/catalog/trainingplans"
	"github.com/fitstack/catalog/internal/catalog/workouts"
	"github.com/fitstack/catalog/internal/config"
	"github.com/fitstack/catalog/internal/db"
	"github.com/fitstack/catalog/internal/middleware"
	"github.com/fitstack/catalog/internal/telemetry/metrics"
	"github.com/fitstack/catalog/internal/telemetry/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient *redis.Client

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("catalog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "catalog-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient: rdb,

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("catalog-router"))

	muscleGroupsRepo := musclegroups.NewRepo(s.dbPool)
	equipmentRepo := equipment.NewRepo(s.dbPool)
	exercisesRepo := exercises.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)
	trainingPlansRepo := trainingplans.NewRepo(s.dbPool)

	muscleGroupsHandler := musclegroups.NewHandler(
		musclegroups.NewService(muscleGroupsRepo),
		s.metricsManager,
	)
	r.HandleFunc("/musclegroups", muscleGroupsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-muscle-group")
	r.HandleFunc("/musclegroups/list/page/{page}/size/{size}", muscleGroupsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	r.HandleFunc("/musclegroups/{id:[0-9]+}", muscleGroupsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-muscle-group")
	r.HandleFunc("/musclegroups/{id:[0-9]+}", muscleGroupsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-muscle-group")
	r.HandleFunc("/musclegroups/{id:[0-9]+}", muscleGroupsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-muscle-group")

	equipmentHandler := equipment.NewHandler(
		equipment.NewService(equipmentRepo),
		s.metricsManager,
	)
	r.HandleFunc("/equipment", equipmentHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-equipment")
	r.HandleFunc("/equipment/list/page/{page}/size/{size}", equipmentHandler.HandleList).Methods("GET", "OPTIONS").Name("list-equipment")
	r.HandleFunc("/equipment/rate", equipmentHandler.HandleRate).Methods("POST", "OPTIONS").Name("rate-equipment")
	r.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-equipment")
	r.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-equipment")
	r.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-equipment")

	exercisesHandler := exercises.NewHandler(
		exercises.NewService(exercisesRepo, muscleGroupsRepo, equipmentRepo),
		s.metricsManager,
	)
	r.HandleFunc("/exercises", exercisesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-exercise")
	r.HandleFunc("/exercises/list/page/{page}/size/{size}", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/rate", exercisesHandler.HandleRate).Methods("POST", "OPTIONS").Name("rate-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	workoutsHandler := workouts.NewHandler(
		workouts.NewService(workoutsRepo, exercisesRepo),
		s.metricsManager,
	)
	r.HandleFunc("/workouts", workoutsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-workout")
	r.HandleFunc("/workouts/list/page/{page}/size/{size}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/byids", workoutsHandler.HandleGetByIDs).Methods("POST", "OPTIONS").Name("get-workouts-by-ids")
	r.HandleFunc("/workouts/rate", workoutsHandler.HandleRate).Methods("POST", "OPTIONS").Name("rate-workout")
	r.HandleFunc("/workouts/exercise/{id:[0-9]+}", workoutsHandler.HandleGetExerciseInWorkout).Methods("GET", "OPTIONS").Name("get-exercise-in-workout")
	r.HandleFunc("/workouts/{id:[0-9]+}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id:[0-9]+}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id:[0-9]+}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	trainingPlansHandler := trainingplans.NewHandler(
		trainingplans.NewService(trainingPlansRepo, workoutsRepo),
		s.metricsManager,
	)
	r.HandleFunc("/trainingplans", trainingPlansHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-training-plan")
	r.HandleFunc("/trainingplans/list/page/{page}/size/{size}", trainingPlansHandler.HandleList).Methods("GET", "OPTIONS").Name("list-training-plans")
	r.HandleFunc("/trainingplans/byids", trainingPlansHandler.HandleGetByIDs).Methods("POST", "OPTIONS").Name("get-training-plans-by-ids")
	r.HandleFunc("/trainingplans/rate", trainingPlansHandler.HandleRate).Methods("POST", "OPTIONS").Name("rate-training-plan")
	r.HandleFunc("/trainingplans/{id:[0-9]+}", trainingPlansHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-training-plan")
	r.HandleFunc("/trainingplans/{id:[0-9]+}", trainingPlansHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-training-plan")
	r.HandleFunc("/trainingplans/{id:[0-9]+}", trainingPlansHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-training-plan")

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(s.versionInfo)); err != nil {
			log.Errorf("write version response: %s", err)
		}
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	ratingsRateLimiter := redis_rate.NewLimiter(s.redisClient)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.RateLimitRatings(
		ratingsRateLimiter,
		s.metricsManager,
		s.config.RatingRateLimitAllowedPerMin,
	))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("catalog service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
