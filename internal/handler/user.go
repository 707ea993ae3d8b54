package handler

import (
	"net/http"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/ctxkeys"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Medal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	tier, err := h.userService.MedalTier(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"medal": tier})
}

// UpdateMedal re-evaluates the tier from completed-goal state. The client
// cannot pick a tier; the engine's recomputed value wins and never decreases.
func (h *UserHandler) UpdateMedal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	tier, err := h.userService.ReevaluateMedal(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"medal": tier})
}

func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	period := r.URL.Query().Get("period")
	if period == "" {
		period = service.PeriodWeek
	}

	stats, err := h.userService.AggregateStats(user.ID, period)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
