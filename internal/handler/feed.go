package handler

import (
	"net/http"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/ctxkeys"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/service"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	feed, err := h.feedService.Feed(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, feed)
}
