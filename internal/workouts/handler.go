package workouts

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Handler struct {
	store          *Store
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(store *Store, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:          store,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	mainRouter.HandleFunc("/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	mainRouter.HandleFunc("/workouts/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("workout-stats")

	// adding is rate limited, everything else is read only
	rateLimit := middleware.RateLimit(rateLimiter, "workouts-add", allowedPerMin, h.metricsManager)
	mainRouter.Handle("/workouts", rateLimit(http.HandlerFunc(h.HandleAdd))).Methods("POST", "OPTIONS").Name("new-workout")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	added, err := h.store.Add(workout)
	if err != nil {
		if errors.Is(err, ErrInvalidWorkout) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add workout: %s", err)
		http.Error(w, "error, add workout failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("workout.id", added.ID))
	span.SetAttributes(attribute.Int("workout.exercises", len(added.Exercises)))
	if h.metricsManager != nil {
		h.metricsManager.CounterWorkouts.Inc()
	}

	log.Debugf("workout [%d] %s added with %d exercises", added.ID, added.Name, len(added.Exercises))
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	limit := pkg.ParseLimit(r.URL.Query().Get("limit"), defaultListLimit, maxListLimit)
	span.SetAttributes(attribute.Int("limit", limit))

	pkg.WriteJSON(w, h.store.List(limit), http.StatusOK)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	pkg.WriteJSON(w, h.store.Stats(h.now()), http.StatusOK)
}
