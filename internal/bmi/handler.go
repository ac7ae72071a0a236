package bmi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/bmi", h.HandleCalculate).Methods("POST", "OPTIONS").Name("bmi")
	r.HandleFunc("/bmi/categories", h.HandleCategories).Methods("GET", "OPTIONS").Name("bmi-categories")
}

func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.bmi.calculate")
	defer span.End()

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("calculate bmi, unmarshal json params: %s", err)
		http.Error(w, "calculate bmi failed", http.StatusBadRequest)
		return
	}

	res, err := Calculate(in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("calculate bmi: %s", err)
		http.Error(w, "calculate bmi failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("bmi.category", res.Category))
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.bmi.categories")
	defer span.End()

	pkg.WriteJSON(w, Categories(), http.StatusOK)
}
