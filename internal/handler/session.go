package handler

import (
	"net/http"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/ctxkeys"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/service"
)

type SessionHandler struct {
	sessionService *service.SessionService
}

func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

type saveSessionRequest struct {
	Distance     float64 `json:"distance" validate:"gte=0"`
	SpeedAvg     float64 `json:"speedAvg" validate:"gte=0"`
	HeartRateAvg float64 `json:"heartRateAvg" validate:"gte=0"`
	Calories     float64 `json:"calories" validate:"gte=0"`
	Time         float64 `json:"time" validate:"gte=0"` // seconds
}

// Save persists a session and reports the ingestion side effects. A partial
// result is still a 201: the session is durable even when bookkeeping failed.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req saveSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.sessionService.Save(user.ID, service.SessionInput{
		Distance:     req.Distance,
		SpeedAvg:     req.SpeedAvg,
		HeartRateAvg: req.HeartRateAvg,
		Calories:     req.Calories,
		Time:         req.Time,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	sessions, err := h.sessionService.ByUser(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sessions)
}
