package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
	"github.com/rocketscienceinc/geoquiz-backend/internal/usecase"
)

type quizUseCase interface {
	GetQuiz(ctx context.Context, playerID string) (*usecase.ActionResult, error)
	Pick(ctx context.Context, playerID, mesh string) (*usecase.PickResult, error)
}

type QuizHandler struct {
	logger      *slog.Logger
	quizUseCase quizUseCase
	catalog     *entity.Catalog
}

func NewQuizHandler(logger *slog.Logger, quizUseCase quizUseCase, catalog *entity.Catalog) *QuizHandler {
	return &QuizHandler{
		logger:      logger,
		quizUseCase: quizUseCase,
		catalog:     catalog,
	}
}

func (that *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Get("/countries", that.countries)
	r.Route("/players/{id}", func(r chi.Router) {
		r.Get("/quiz", that.quizState)
		r.Get("/quiz/meshes/{mesh}", that.pick)
	})
}

type countriesResponse struct {
	Meshes []string `json:"meshes"`
}

// countries lists the meshes the scene has to load. Names stay hidden.
func (that *QuizHandler) countries(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, countriesResponse{Meshes: that.catalog.Meshes()})
}

func (that *QuizHandler) quizState(w http.ResponseWriter, r *http.Request) {
	result, err := that.quizUseCase.GetQuiz(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, result.Quiz)
}

func (that *QuizHandler) pick(w http.ResponseWriter, r *http.Request) {
	pick, err := that.quizUseCase.Pick(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "mesh"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, pick)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *QuizHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrNotFound.Error()})
	case errors.Is(err, apperror.ErrUnknownMesh):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrUnknownMesh.Error()})
	default:
		that.logger.Error("quiz request failed", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func (that *QuizHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
