package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/coachmcp"
	"github.com/2beens/gymdesk/internal/config"
	"github.com/2beens/gymdesk/internal/db"
	"github.com/2beens/gymdesk/internal/events"
	"github.com/2beens/gymdesk/internal/exercises"
	"github.com/2beens/gymdesk/internal/gyms"
	"github.com/2beens/gymdesk/internal/membership"
	"github.com/2beens/gymdesk/internal/middleware"
	"github.com/2beens/gymdesk/internal/misc"
	"github.com/2beens/gymdesk/internal/nutrition"
	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/internal/workoutplans"
	"github.com/2beens/gymdesk/internal/workouts"
)

const maxRequestBodyBytes = 1 << 20

type planEventPublisher interface {
	PublishPlanChanged(ctx context.Context, event events.PlanChanged) error
	Close() error
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	mcpSecret         string

	config    *config.Config
	dbPool    *pgxpool.Pool
	publisher planEventPublisher

	redisClient *redis.Client
	verifier    *auth.Verifier
	revocations *auth.RevocationStore

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AuthSecret              string
	MCPSecret               string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if params.AuthSecret == "" {
		return nil, errors.New("auth secret not set")
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Config.RunMigrations {
		if err := db.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	promRegistry := metrics.SetupPrometheus()
	if err := db.RegisterPoolMetrics(dbPool, promRegistry, params.Config.PostgresDBName); err != nil {
		log.Errorf("register db pool metrics: %s", err)
	}
	metricsManager := metrics.NewManager("gymdesk", "main", promRegistry)
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
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymdesk-backend", rdb)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	var publisher planEventPublisher = events.NopPublisher{}
	if len(params.Config.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(params.Config.KafkaBrokers, params.Config.PlanEventsTopic, metricsManager)
		log.Debugf("plan events -> kafka %v, topic [%s]", params.Config.KafkaBrokers, params.Config.PlanEventsTopic)
	} else {
		log.Warn("no kafka brokers configured, plan change events are dropped")
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		publisher:   publisher,
		versionInfo: params.VersionInfo,
		mcpSecret:   params.MCPSecret,

		redisClient: rdb,
		verifier:    auth.NewVerifier(params.AuthSecret, params.Config.AuthTokenIssuer),
		revocations: auth.NewRevocationStore(rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	misc.NewHandler(s.versionInfo).SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authRateLimit := middleware.RateLimit(reqRateLimiter, s.metricsManager, "auth", s.config.AuthRateLimitAllowedPerMin)
	joinRateLimit := middleware.RateLimit(reqRateLimiter, s.metricsManager, "join-gym", s.config.AuthRateLimitAllowedPerMin)

	gymsRepo := gyms.NewRepo(s.dbPool)
	access := gyms.NewAccess(gymsRepo)

	gymsHandler := gyms.NewHandler(gyms.NewService(gymsRepo), access)
	r.HandleFunc("/gyms", gymsHandler.HandleGetGym).Methods("GET", "OPTIONS").Name("get-gym")
	r.HandleFunc("/gyms", gymsHandler.HandleCreateGym).Methods("POST", "OPTIONS").Name("create-gym")
	r.HandleFunc("/gyms/members", gymsHandler.HandleListMembers).Methods("GET", "OPTIONS").Name("list-members")
	r.Handle("/gyms/members", joinRateLimit(http.HandlerFunc(gymsHandler.HandleAddMember))).Methods("POST", "OPTIONS").Name("add-member")
	r.HandleFunc("/members/me/connection-code", gymsHandler.HandleIssueConnectionCode).Methods("POST", "OPTIONS").Name("issue-connection-code")

	authHandler := auth.NewHandler(s.revocations)
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/me", gymsHandler.HandleMe).Methods("GET", "OPTIONS").Name("auth-me")
	authRouter.HandleFunc("/register", gymsHandler.HandleRegister).Methods("POST", "OPTIONS").Name("auth-register")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("auth-logout")
	authRouter.Use(authRateLimit)

	nutritionService := nutrition.NewService(
		nutrition.NewRepo(s.dbPool),
		nutrition.NewResolver(s.config.ClampNutritionAverageToMembershipAge),
		s.metricsManager,
	)
	nutritionHandler := nutrition.NewHandler(nutritionService, access)
	r.HandleFunc("/members/{id}/nutrition", nutritionHandler.HandleGetSummary).Methods("GET", "OPTIONS").Name("nutrition-summary")
	r.HandleFunc("/meals", nutritionHandler.HandleLogMeal).Methods("POST", "OPTIONS").Name("log-meal")

	workoutsHandler := workouts.NewHandler(workouts.NewService(workouts.NewRepo(s.dbPool)), access)
	r.HandleFunc("/members/{id}/workouts", workoutsHandler.HandleListAssigned).Methods("GET", "OPTIONS").Name("list-assigned-workouts")
	r.HandleFunc("/members/{id}/workouts", workoutsHandler.HandleAssign).Methods("POST", "OPTIONS").Name("assign-workout")
	r.HandleFunc("/workout-logs/member/{memberId}", workoutsHandler.HandleGetLog).Methods("GET", "OPTIONS").Name("get-workout-log")
	r.HandleFunc("/workout-logs/member/{memberId}", workoutsHandler.HandleSaveLog).Methods("PUT", "OPTIONS").Name("save-workout-log")

	r.HandleFunc("/members/{id}", gymsHandler.HandleGetMember).Methods("GET", "OPTIONS").Name("get-member")
	r.HandleFunc("/members/{id}", gymsHandler.HandleUpdateMember).Methods("PATCH", "OPTIONS").Name("update-member")

	plansService := workoutplans.NewService(workoutplans.NewRepo(s.dbPool), s.publisher, s.metricsManager)
	plansHandler := workoutplans.NewHandler(plansService, access)
	r.HandleFunc("/workout-plans/member/{memberId}", plansHandler.HandleGetSchedule).Methods("GET", "OPTIONS").Name("weekly-schedule")
	r.HandleFunc("/workout-plans/member/{memberId}", plansHandler.HandleUpsertDayPlan).Methods("POST", "OPTIONS").Name("upsert-day-plan")
	r.HandleFunc("/workout-plans/{planId}", plansHandler.HandleGetPlan).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/workout-plans/{planId}/exercises", plansHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-plan-exercise")
	r.HandleFunc("/workout-plans/{planId}/exercises/{order}", plansHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-plan-exercise")

	membershipHandler := membership.NewHandler(membership.NewService(membership.NewRepo(s.dbPool)), access)
	r.HandleFunc("/plans", membershipHandler.HandleList).Methods("GET", "OPTIONS").Name("list-membership-plans")
	r.HandleFunc("/plans", membershipHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-membership-plan")
	r.HandleFunc("/plans/{id}", membershipHandler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-membership-plan")
	r.HandleFunc("/plans/{id}", membershipHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-membership-plan")

	exercisesHandler := exercises.NewHandler(exercises.NewService(exercises.NewRepo(s.dbPool)), access)
	r.HandleFunc("/gym-exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-gym-exercises")
	r.HandleFunc("/gym-exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-gym-exercise")
	r.HandleFunc("/gym-exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-gym-exercise")

	if s.config.MCPEnabled {
		mcpServer := coachmcp.NewServer(nutritionService, plansService)
		r.PathPrefix("/mcp").
			Handler(otelhttp.NewHandler(coachmcp.NewHTTPHandler(mcpServer), "coach-mcp")).
			Name("coach-mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.verifier,
		s.revocations,
		s.metricsManager,
		s.mcpSecret,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitRequestBody(maxRequestBodyBytes))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

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
		promhttp.HandlerOpts{Registry: s.promRegistry},
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
			log.Fatalf("main service, listen and serve: %s", err)
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

// GracefulShutdown stops accepting requests, then releases the broker, redis and db.
// Every failure is collected, none stops the remaining steps.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	if s.publisher != nil {
		if closeErr := s.publisher.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close plan events publisher: %w", closeErr))
		}
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
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

	return err
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
