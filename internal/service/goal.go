package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/progression"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
)

type GoalService struct {
	goalRepo     repository.GoalRepository
	userGoalRepo repository.UserGoalRepository
	sessionRepo  repository.SessionRepository
}

func NewGoalService(
	goalRepo repository.GoalRepository,
	userGoalRepo repository.UserGoalRepository,
	sessionRepo repository.SessionRepository,
) *GoalService {
	return &GoalService{
		goalRepo:     goalRepo,
		userGoalRepo: userGoalRepo,
		sessionRepo:  sessionRepo,
	}
}

// Start begins an attempt at a catalog goal. Unknown goal identifiers are
// rejected rather than synthesized into catalog entries, and the store's
// one-active-goal constraint rejects a second concurrent start.
func (s *GoalService) Start(userID, goalID string) (*model.UserGoal, error) {
	_, err := s.goalRepo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	ug := &model.UserGoal{
		ID:     uuid.New().String(),
		UserID: userID,
		GoalID: goalID,
		Start:  time.Now(),
	}

	err = s.userGoalRepo.Create(ug)
	if err != nil {
		return nil, err
	}

	return ug, nil
}

// IsActive reports whether the given catalog goal is the user's current
// active attempt.
func (s *GoalService) IsActive(userID, goalID string) (bool, error) {
	ug, err := s.userGoalRepo.ActiveByUser(userID)
	if err == repository.ErrNoActiveGoal {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return ug.GoalID == goalID, nil
}

// Abandon hard-deletes an attempt. Explicit abandonment is the only delete
// path for user goals.
func (s *GoalService) Abandon(userGoalID string) error {
	_, err := s.userGoalRepo.ByID(userGoalID)
	if err != nil {
		return err
	}

	return s.userGoalRepo.Delete(userGoalID)
}

// Stats aggregates the user's sessions recorded since the attempt started and
// derives the completion percentage from the goal's thresholds.
func (s *GoalService) Stats(userGoalID string) (*model.GoalStats, error) {
	ug, err := s.userGoalRepo.ByID(userGoalID)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.ByID(ug.GoalID)
	if err != nil {
		return nil, err
	}

	totals, err := s.sessionRepo.TotalsSince(ug.UserID, ug.Start)
	if err != nil {
		return nil, err
	}

	return &model.GoalStats{
		TotalDistance:   totals.Distance,
		TotalTime:       totals.Time,
		AvgSpeed:        totals.AvgSpeed,
		ProgressPercent: progression.Percent(goal, totals.Distance, totals.Time),
	}, nil
}

// Finish marks an attempt completed at the given time. The update is
// conditional on finish still being null; finishing an already-finished
// attempt is a no-op that returns the stored record.
func (s *GoalService) Finish(userGoalID string, finish time.Time) (*model.UserGoal, error) {
	_, err := s.userGoalRepo.ByID(userGoalID)
	if err != nil {
		return nil, err
	}

	_, err = s.userGoalRepo.Finish(userGoalID, finish)
	if err != nil {
		return nil, err
	}

	return s.userGoalRepo.ByID(userGoalID)
}
