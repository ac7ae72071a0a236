package misc

import (
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

// View is one of the navigation destinations the client renders.
type View struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var views = []View{
	{ID: "dashboard", Label: "Dashboard"},
	{ID: "tracker", Label: "Workout Tracker"},
	{ID: "exercises", Label: "Exercise Library"},
	{ID: "bmi", Label: "BMI Calculator"},
	{ID: "timer", Label: "Workout Timer"},
}

type Handler struct {
	tipsManager *TipsManager
	versionInfo string
}

func NewHandler(tipsManager *TipsManager, versionInfo string) *Handler {
	return &Handler{
		tipsManager: tipsManager,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/views", handler.handleGetViews).Methods("GET", "OPTIONS").Name("views")
	mainRouter.HandleFunc("/tip/random", handler.handleGetRandomTip).Methods("GET", "OPTIONS").Name("tip")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleGetViews(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, views, http.StatusOK)
}

func (handler *Handler) handleGetRandomTip(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.tip")
	defer span.End()

	tip := handler.tipsManager.RandomTip()
	span.SetAttributes(attribute.String("tip.title", tip.Title))

	pkg.WriteJSON(w, tip, http.StatusOK)
}
