package service

import (
	"log/slog"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/progression"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
)

// FeedService assembles the combined level/goal/medal sequence the clients
// render. It is a pure read: resolving statuses and interleaving never
// mutates anything, so it tolerates stale replicas.
type FeedService struct {
	catalogService *CatalogService
	userGoalRepo   repository.UserGoalRepository
}

func NewFeedService(catalogService *CatalogService, userGoalRepo repository.UserGoalRepository) *FeedService {
	return &FeedService{
		catalogService: catalogService,
		userGoalRepo:   userGoalRepo,
	}
}

func (s *FeedService) Feed(userID string) ([]model.FeedItem, error) {
	goals, err := s.catalogService.Goals()
	if err != nil {
		return nil, err
	}

	levels, err := s.catalogService.Levels()
	if err != nil {
		return nil, err
	}

	medals, err := s.catalogService.Medals()
	if err != nil {
		return nil, err
	}

	history, err := s.userGoalRepo.ByUser(userID)
	if err != nil {
		return nil, err
	}

	if !progression.CatalogAligned(levels, goals, medals) {
		slog.Warn("level/medal catalogs do not cover every goal block",
			"goals", len(goals), "levels", len(levels), "medals", len(medals))
	}

	statuses := progression.Statuses(goals, history)
	return progression.Interleave(levels, goals, statuses, medals), nil
}

// Statuses exposes the per-goal status map without the interleaved catalogs.
func (s *FeedService) Statuses(userID string) (map[string]string, error) {
	goals, err := s.catalogService.Goals()
	if err != nil {
		return nil, err
	}

	history, err := s.userGoalRepo.ByUser(userID)
	if err != nil {
		return nil, err
	}

	return progression.Statuses(goals, history), nil
}
