package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/treinos/internal/telemetry/tracing"
	"github.com/2beens/treinos/pkg"
)

const healthCheckTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// BrowserConfig is served as /config.json and tells the browser page
// where to reach the API.
type BrowserConfig struct {
	ServerIP   string `json:"serverIp"`
	ServerPort int    `json:"serverPort"`
}

type Handler struct {
	db            dbPinger
	redis         redisPinger
	versionInfo   string
	browserConfig BrowserConfig
}

// NewHandler creates the misc handler. redisClient may be nil when rate limiting is off.
func NewHandler(
	db dbPinger,
	redisClient redisPinger,
	versionInfo string,
	browserConfig BrowserConfig,
) *Handler {
	return &Handler{
		db:            db,
		redis:         redisClient,
		versionInfo:   versionInfo,
		browserConfig: browserConfig,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/config.json", handler.handleBrowserConfig).Methods("GET").Name("browser-config")
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("health: db ping: %s", err)
		span.SetStatus(codes.Error, "db-ping-failed")
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	if handler.redis != nil {
		if err := handler.redis.Ping(ctx).Err(); err != nil {
			log.Errorf("health: redis ping: %s", err)
			span.SetStatus(codes.Error, "redis-ping-failed")
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	span.SetStatus(codes.Ok, "ok")
	pkg.WriteTextResponseOK(w, "ok")
}

func (handler *Handler) handleBrowserConfig(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, handler.browserConfig, http.StatusOK)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
