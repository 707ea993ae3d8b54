package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/progression"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var (
	ErrInvalidPeriod = errors.New("invalid period: must be day, week, month or year")
)

// PeriodStats is the user aggregate over a trailing window.
type PeriodStats struct {
	Period        string  `json:"period"`
	TotalDistance float64 `json:"totalDistance"` // km
	TotalTime     float64 `json:"totalTime"`     // seconds
	AvgSpeed      float64 `json:"avgSpeed"`      // km/h
}

type UserService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	userGoalRepo repository.UserGoalRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	userGoalRepo repository.UserGoalRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		userGoalRepo: userGoalRepo,
	}
}

func (s *UserService) Register(email, name string) (*model.User, error) {
	user := &model.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}

	err := s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepo.ByID(id)
}

// MedalTier returns the stored tier.
func (s *UserService) MedalTier(userID string) (int, error) {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return 0, err
	}

	return user.Medal, nil
}

// ReevaluateMedal recomputes the tier from the durable set of completed goal
// positions and upgrades the stored value when the recomputation is higher.
// It never lowers the tier, so duplicate or replayed triggers are safe.
func (s *UserService) ReevaluateMedal(userID string) (int, error) {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return 0, err
	}

	positions, err := s.userGoalRepo.CompletedPositions(userID)
	if err != nil {
		return user.Medal, fmt.Errorf("failed to load completed positions: %w", err)
	}

	tier := progression.Tier(positions)
	if tier <= user.Medal {
		return user.Medal, nil
	}

	err = s.userRepo.UpgradeMedal(userID, tier)
	if err != nil {
		return user.Medal, fmt.Errorf("failed to upgrade medal: %w", err)
	}

	return tier, nil
}

// AggregateStats sums the user's sessions over a trailing day/week/month/year.
func (s *UserService) AggregateStats(userID, period string) (*PeriodStats, error) {
	since, err := periodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	// Validate the user exists before aggregating over nothing.
	_, err = s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	totals, err := s.sessionRepo.TotalsSince(userID, since)
	if err != nil {
		return nil, err
	}

	return &PeriodStats{
		Period:        period,
		TotalDistance: totals.Distance,
		TotalTime:     totals.Time,
		AvgSpeed:      totals.AvgSpeed,
	}, nil
}

func periodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case PeriodDay:
		return now.AddDate(0, 0, -1), nil
	case PeriodWeek:
		return now.AddDate(0, 0, -7), nil
	case PeriodMonth:
		return now.AddDate(0, -1, 0), nil
	case PeriodYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, ErrInvalidPeriod
	}
}
