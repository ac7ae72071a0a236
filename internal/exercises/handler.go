package exercises

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/cache"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultListCacheTTL = 10 * time.Minute

type Handler struct {
	catalog  *Catalog
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(catalog *Catalog, listCache cache.Cache, cacheTTL time.Duration) *Handler {
	if cacheTTL <= 0 {
		cacheTTL = DefaultListCacheTTL
	}
	return &Handler{
		catalog:  catalog,
		cache:    listCache,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises/categories", h.HandleCategories).Methods("GET", "OPTIONS").Name("exercise-categories")
	r.HandleFunc("/exercises/{category}", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{category}/{name}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.categories")
	defer span.End()

	pkg.WriteJSON(w, h.catalog.Categories(), http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	category := mux.Vars(r)["category"]
	search := r.URL.Query().Get("search")
	span.SetAttributes(attribute.String("category", category))
	span.SetAttributes(attribute.String("search", search))

	cacheKey := listCacheKey(category, search)
	if h.cache != nil {
		if cached, found := h.cache.Get(cacheKey); found {
			log.Tracef("exercises list [%s] served from cache", cacheKey)
			span.SetAttributes(attribute.Bool("cache.hit", true))
			pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
			return
		}
	}

	exercises, err := h.catalog.List(category, search)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}

	respJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal exercises list: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(cacheKey, respJson, h.cacheTTL); err != nil {
			log.Errorf("failed to cache exercises list [%s]: %s", cacheKey, err)
		}
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	ex, err := h.catalog.Get(vars["category"], vars["name"])
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}

	pkg.WriteJSON(w, ex, http.StatusOK)
}

func (h *Handler) writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		http.Error(w, "category not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	default:
		log.Errorf("exercise catalog: %s", err)
		http.Error(w, "exercise catalog error", http.StatusInternalServerError)
	}
}

func listCacheKey(category, search string) string {
	return fmt.Sprintf("exercises::%s::%s",
		strings.ToLower(strings.TrimSpace(category)),
		strings.ToLower(strings.TrimSpace(search)),
	)
}
