package handler

import (
	"net/http"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/service"
)

// CatalogHandler manages the ordered goal/level/medal reference data.
// Creation assigns positions at insert time; there is no update or delete,
// so positions are never reused once referenced.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) Goals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.catalogService.Goals()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

type createGoalRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Note        string   `json:"note"`
	Icon        string   `json:"icon"`
	Distance    *float64 `json:"distance" validate:"omitempty,gt=0"` // km
	Time        *float64 `json:"time" validate:"omitempty,gt=0"`     // minutes
	SpeedAvg    *float64 `json:"speedAvg" validate:"omitempty,gt=0"` // km/h
}

func (h *CatalogHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.catalogService.CreateGoal(req.Title, req.Description, req.Note, req.Icon, req.Distance, req.Time, req.SpeedAvg)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

type createLevelRequest struct {
	Title string `json:"title" validate:"required"`
	Note  string `json:"note"`
}

func (h *CatalogHandler) CreateLevel(w http.ResponseWriter, r *http.Request) {
	var req createLevelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	level, err := h.catalogService.CreateLevel(req.Title, req.Note)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, level)
}

type createMedalRequest struct {
	Title string `json:"title" validate:"required"`
	Note  string `json:"note"`
	Icon  string `json:"icon"`
}

func (h *CatalogHandler) CreateMedal(w http.ResponseWriter, r *http.Request) {
	var req createMedalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	medal, err := h.catalogService.CreateMedal(req.Title, req.Note, req.Icon)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, medal)
}
