package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
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

	"github.com/2beens/treinos/internal/config"
	"github.com/2beens/treinos/internal/db"
	"github.com/2beens/treinos/internal/exercises"
	"github.com/2beens/treinos/internal/middleware"
	"github.com/2beens/treinos/internal/misc"
	"github.com/2beens/treinos/internal/students"
	"github.com/2beens/treinos/internal/telemetry/metrics"
	"github.com/2beens/treinos/internal/telemetry/tracing"
	"github.com/2beens/treinos/internal/workouts"
	"github.com/2beens/treinos/pkg"
)

const writeRateLimitKey = "treinos-writes"

// apiPrefixes are never served from the public dir, so a request that misses
// every api route gets a 404 instead of a 405 from the static catch-all.
var apiPrefixes = []string{"/alunos", "/treinos", "/exercicios"}

// store is what the server needs from the database: queries for the repos,
// and a ping for /health.
type store interface {
	db.Querier
	Ping(ctx context.Context) error
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool
	db     store

	// nil when write rate limiting is disabled
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, tracing.ServiceName)
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		otelShutdown()
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Config.EnsureSchema {
		if err := db.EnsureSchema(ctx, dbPool); err != nil {
			dbPool.Close()
			otelShutdown()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		log.Debugln("db schema ensured")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("treinos", "api", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		db:          dbPool,
		versionInfo: params.VersionInfo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.Config.RateLimitEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if params.HoneycombTracingEnabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}

		s.redisClient = rdb
		s.rateLimiter = redis_rate.NewLimiter(rdb)
	} else {
		log.Debugln("write rate limiting disabled")
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("treinos-router"))

	studentsRepo := students.NewRepo(s.db)
	workoutsRepo := workouts.NewRepo(s.db)
	exercisesRepo := exercises.NewRepo(s.db)

	students.NewHandler(studentsRepo, s.metricsManager).SetupRoutes(r)
	workouts.NewHandler(
		workoutsRepo,
		workouts.NewService(studentsRepo, workoutsRepo, exercisesRepo),
		s.metricsManager,
	).SetupRoutes(r)
	exercises.NewHandler(exercisesRepo).SetupRoutes(r)

	browserConfig := misc.BrowserConfig{
		ServerIP:   s.config.PublicHost,
		ServerPort: s.config.Port,
	}
	miscHandler := misc.NewHandler(s.db, nil, s.versionInfo, browserConfig)
	if s.redisClient != nil {
		miscHandler = misc.NewHandler(s.db, s.redisClient, s.versionInfo, browserConfig)
	}
	miscHandler.SetupRoutes(r)

	if s.config.PublicDir != "" {
		exists, err := pkg.PathExists(s.config.PublicDir, true)
		if err != nil {
			return nil, fmt.Errorf("check public dir: %w", err)
		}
		if exists {
			staticHandler := otelhttp.NewHandler(http.FileServer(http.Dir(s.config.PublicDir)), "static")
			r.PathPrefix("/").
				MatcherFunc(outsideAPI).
				Handler(staticHandler).
				Methods("GET", "HEAD").
				Name("static")
		} else {
			log.Warnf("public dir [%s] not found, static files not served", s.config.PublicDir)
		}
	}

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	if s.rateLimiter != nil {
		r.Use(middleware.RateLimitWrites(
			s.rateLimiter,
			writeRateLimitKey,
			s.config.WriteRateLimitAllowedPerMin,
			s.metricsManager,
		))
	}
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
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before closing what they depend on
	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		shutdownErr = multierr.Append(shutdownErr, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if shutdownErr != nil {
		log.Errorf(" >>> graceful shutdown errors: %s", shutdownErr)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func outsideAPI(r *http.Request, _ *mux.RouteMatch) bool {
	for _, prefix := range apiPrefixes {
		if r.URL.Path == prefix || strings.HasPrefix(r.URL.Path, prefix+"/") {
			return false
		}
	}
	return true
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
