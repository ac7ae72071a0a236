package gymtimer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/timer"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=gymtimer_test

type timerService interface {
	Presets() []timer.Preset
	Create(ctx context.Context) (*SessionView, error)
	Get(ctx context.Context, id string) (*SessionView, error)
	Delete(ctx context.Context, id string) error
	Start(ctx context.Context, id string) (*SessionView, error)
	Pause(ctx context.Context, id string) (*SessionView, error)
	Reset(ctx context.Context, id string) (*SessionView, error)
	SetMode(ctx context.Context, id string, mode timer.Mode) (*SessionView, error)
	SetDuration(ctx context.Context, id string, raw string) (*SessionView, error)
	ApplyPreset(ctx context.Context, id string, name string) (*SessionView, error)
}

type PresetResponse struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Label    string `json:"label"`
}

type DeleteSessionResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service timerService
}

func NewHandler(service timerService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/timers", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-timer")
	r.HandleFunc("/timers/presets", h.HandlePresets).Methods("GET", "OPTIONS").Name("timer-presets")
	r.HandleFunc("/timers/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-timer")
	r.HandleFunc("/timers/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-timer")
	r.HandleFunc("/timers/{id}/start", h.HandleStart).Methods("POST", "OPTIONS").Name("start-timer")
	r.HandleFunc("/timers/{id}/pause", h.HandlePause).Methods("POST", "OPTIONS").Name("pause-timer")
	r.HandleFunc("/timers/{id}/reset", h.HandleReset).Methods("POST", "OPTIONS").Name("reset-timer")
	r.HandleFunc("/timers/{id}/mode", h.HandleSetMode).Methods("PUT", "OPTIONS").Name("timer-mode")
	r.HandleFunc("/timers/{id}/duration", h.HandleSetDuration).Methods("PUT", "OPTIONS").Name("timer-duration")
	r.HandleFunc("/timers/{id}/preset", h.HandleApplyPreset).Methods("POST", "OPTIONS").Name("timer-preset")
}

func (h *Handler) HandlePresets(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.presets")
	defer span.End()

	presets := h.service.Presets()
	resp := make([]PresetResponse, 0, len(presets))
	for _, p := range presets {
		resp = append(resp, PresetResponse{
			Name:     p.Name,
			Duration: p.Seconds,
			Label:    p.Label(),
		})
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.create")
	defer span.End()

	view, err := h.service.Create(ctx)
	if err != nil {
		h.writeServiceError(w, "create timer", err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.get")
	defer span.End()

	view, err := h.service.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, "get timer", err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := h.service.Delete(ctx, id); err != nil {
		h.writeServiceError(w, "delete timer", err)
		return
	}

	pkg.WriteJSON(w, DeleteSessionResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.start")
	defer span.End()

	view, err := h.service.Start(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, "start timer", err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.pause")
	defer span.End()

	view, err := h.service.Pause(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, "pause timer", err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.reset")
	defer span.End()

	view, err := h.service.Reset(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, "reset timer", err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleSetMode(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.mode")
	defer span.End()

	var modeReq struct {
		Mode timer.Mode `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&modeReq); err != nil {
		log.Tracef("set timer mode, unmarshal json params: %s", err)
		http.Error(w, "set mode failed", http.StatusBadRequest)
		return
	}

	view, err := h.service.SetMode(ctx, mux.Vars(r)["id"], modeReq.Mode)
	if err != nil {
		h.writeServiceError(w, "set timer mode", err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

// HandleSetDuration accepts the seconds either as a JSON number or as the raw
// string typed into the duration field.
func (h *Handler) HandleSetDuration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.duration")
	defer span.End()

	var durationReq struct {
		Seconds json.RawMessage `json:"seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&durationReq); err != nil {
		log.Tracef("set timer duration, unmarshal json params: %s", err)
		http.Error(w, "set duration failed", http.StatusBadRequest)
		return
	}

	raw := strings.Trim(string(durationReq.Seconds), `"`)
	view, err := h.service.SetDuration(ctx, mux.Vars(r)["id"], raw)
	if err != nil {
		h.writeServiceError(w, "set timer duration", err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleApplyPreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymtimer.preset")
	defer span.End()

	var presetReq struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&presetReq); err != nil {
		log.Tracef("apply timer preset, unmarshal json params: %s", err)
		http.Error(w, "apply preset failed", http.StatusBadRequest)
		return
	}
	if presetReq.Name == "" {
		http.Error(w, "error, preset name empty", http.StatusBadRequest)
		return
	}

	view, err := h.service.ApplyPreset(ctx, mux.Vars(r)["id"], presetReq.Name)
	if err != nil {
		h.writeServiceError(w, "apply timer preset", err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "timer not found", http.StatusNotFound)
	case errors.Is(err, ErrTooManySessions):
		http.Error(w, "too many timers", http.StatusTooManyRequests)
	case errors.Is(err, timer.ErrInvalidConfiguration):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, timer.ErrInvalidCommand):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}
