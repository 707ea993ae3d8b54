package handler

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/ctxkeys"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) Start(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goalID := r.PathValue("goalID")
	if goalID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "goal id is required")
		return
	}

	ug, err := h.goalService.Start(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, ug)
}

func (h *GoalHandler) Active(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goalID := r.PathValue("goalID")
	if goalID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "goal id is required")
		return
	}

	active, err := h.goalService.IsActive(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"active": active})
}

func (h *GoalHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.goalService.Abandon(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (h *GoalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	stats, err := h.goalService.Stats(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

type finishRequest struct {
	Finish *time.Time `json:"finish"`
}

func (h *GoalHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Body is optional: an empty body finishes now.
	var req finishRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	finish := time.Now()
	if req.Finish != nil {
		finish = *req.Finish
	}

	ug, err := h.goalService.Finish(id, finish)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ug)
}
