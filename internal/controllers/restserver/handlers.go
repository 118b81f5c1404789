package restserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/thermoquiz/thermoquiz/internal/chart"
	"github.com/thermoquiz/thermoquiz/internal/constants"
	"github.com/thermoquiz/thermoquiz/internal/generator"
	"github.com/thermoquiz/thermoquiz/pkg/psychro"
	"github.com/thermoquiz/thermoquiz/pkg/resnet"
)

// Handlers provides HTTP handlers for the question API
type Handlers struct {
	gen    *generator.Generator
	psy    psychro.Psychrometrics
	logger *zap.SugaredLogger
}

// NewHandlers creates a new handlers instance
func NewHandlers(gen *generator.Generator, psy psychro.Psychrometrics, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{
		gen:    gen,
		psy:    psy,
		logger: logger,
	}
}

// PsychroSolutionRequest is the body of POST /psychrometry/show_solution.
type PsychroSolutionRequest struct {
	Outside      psychro.AirState `json:"outside"`
	Room         psychro.AirState `json:"room"`
	MassFlow     float64          `json:"mass_flow"`
	SpecificHeat float64          `json:"specific_heat"`
}

// PsychroSolutionResponse carries the solved process and its chart samples.
type PsychroSolutionResponse struct {
	Solution *psychro.ProcessResult `json:"solution"`
	Chart    *chart.PsychroChart    `json:"chart"`
}

// WallQuestionRequest is the body of the two wall question endpoints.
type WallQuestionRequest struct {
	NumLayers int `json:"num_layers"`
}

// WallQuestionResponse carries a generated wall question, its worked
// solution and the breakdown chart samples.
type WallQuestionResponse struct {
	Question *generator.WallQuestion `json:"question"`
	Solution *resnet.Solution        `json:"solution"`
	Chart    *chart.ResistanceChart  `json:"chart"`
}

// GeneratePsychroQuestion handles GET /psychrometry/generate_question
func (h *Handlers) GeneratePsychroQuestion(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, h.gen.PsychroQuestion())
}

// ShowPsychroSolution handles POST /psychrometry/show_solution
func (h *Handlers) ShowPsychroSolution(w http.ResponseWriter, r *http.Request) {
	var req PsychroSolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	if req.SpecificHeat <= 0 {
		req.SpecificHeat = generator.DefaultSpecificHeat
	}

	result, err := h.psy.SolveCoolingProcess(req.Outside, req.Room, req.MassFlow, req.SpecificHeat)
	if err != nil {
		h.respondError(w, statusForError(err), err)
		return
	}

	h.respondJSON(w, http.StatusOK, PsychroSolutionResponse{
		Solution: result,
		Chart:    chart.Psychrometric(h.psy, req.Outside, req.Room, result),
	})
}

// GenerateHeatLossQuestion handles POST /heat_loss/generate_question
func (h *Handlers) GenerateHeatLossQuestion(w http.ResponseWriter, r *http.Request) {
	h.wallQuestion(w, r, h.gen.WallQuestion)
}

// GenerateBridgingQuestion handles POST /thermal_bridging/generate_question
func (h *Handlers) GenerateBridgingQuestion(w http.ResponseWriter, r *http.Request) {
	h.wallQuestion(w, r, h.gen.BridgingQuestion)
}

func (h *Handlers) wallQuestion(w http.ResponseWriter, r *http.Request, generate func(int) (*generator.WallQuestion, error)) {
	var req WallQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}

	q, err := generate(req.NumLayers)
	if err != nil {
		h.respondError(w, statusForError(err), err)
		return
	}

	layers, err := q.NetworkLayers()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}
	sol, err := resnet.Solve(layers, q.Length*q.Height, q.TInside, q.TOutside)
	if err != nil {
		h.respondError(w, statusForError(err), err)
		return
	}

	h.respondJSON(w, http.StatusOK, WallQuestionResponse{
		Question: q,
		Solution: sol,
		Chart:    chart.Resistance(sol, q.TInside, q.TOutside),
	})
}

// Health handles GET /healthz
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": constants.Version,
	})
}

// statusForError maps the solver error taxonomy to 400 and everything else
// to 500.
func statusForError(err error) int {
	var (
		propertyErr   *psychro.PropertyOutOfRangeError
		saturationErr *psychro.OutOfSaturationRangeError
		geometryErr   *psychro.InvalidProcessGeometryError
		layerErr      *resnet.InvalidLayerSpecError
		networkErr    *resnet.DegenerateNetworkError
	)
	switch {
	case errors.As(err, &propertyErr),
		errors.As(err, &saturationErr),
		errors.As(err, &geometryErr),
		errors.As(err, &layerErr),
		errors.As(err, &networkErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Errorw("encoding response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Errorw("request failed", "error", err)
	} else {
		h.logger.Debugw("rejecting request", "error", err)
	}
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}
