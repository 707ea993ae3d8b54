package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/progression"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
)

// SessionInput is the raw metrics of one finished activity.
type SessionInput struct {
	Distance     float64 // km
	SpeedAvg     float64 // km/h
	HeartRateAvg float64
	Calories     float64
	Time         float64 // seconds
}

const (
	SideEffectsOK      = "ok"
	SideEffectsPartial = "partial"
)

// SaveResult reports a session save and what the ingestion side effects did.
// SideEffects is "partial" when the session was persisted but downstream
// bookkeeping (counter, goal forwarding, medal) failed; the session itself is
// never rolled back for that.
type SaveResult struct {
	Session       *model.Session `json:"session"`
	GoalCompleted bool           `json:"goalCompleted"`
	MedalTier     int            `json:"medalTier"`
	SideEffects   string         `json:"sideEffects"`
}

type SessionService struct {
	sessionRepo  repository.SessionRepository
	userRepo     repository.UserRepository
	userGoalRepo repository.UserGoalRepository
	goalRepo     repository.GoalRepository
	userService  *UserService
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	userGoalRepo repository.UserGoalRepository,
	goalRepo repository.GoalRepository,
	userService *UserService,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		userGoalRepo: userGoalRepo,
		goalRepo:     goalRepo,
		userService:  userService,
	}
}

// Save persists the session and runs the ingestion side effects: the atomic
// total_kilometers increment, progress forwarding to the active goal, the
// conditional completion, and medal re-evaluation. Only a failure to persist
// the session itself is an error; side-effect failures are logged and
// reported as a partial result.
func (s *SessionService) Save(userID string, in SessionInput) (*SaveResult, error) {
	_, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		Distance:     in.Distance,
		SpeedAvg:     in.SpeedAvg,
		HeartRateAvg: in.HeartRateAvg,
		Calories:     in.Calories,
		Time:         in.Time,
		SessionDate:  time.Now(),
	}

	err = s.sessionRepo.Create(session)
	if err != nil {
		return nil, err
	}

	result := &SaveResult{Session: session, SideEffects: SideEffectsOK}

	err = s.userRepo.AddKilometers(userID, session.Distance)
	if err != nil {
		slog.Error("failed to increment total kilometers", "error", err, "user_id", userID, "session_id", session.ID)
		result.SideEffects = SideEffectsPartial
	}

	s.forwardToActiveGoal(userID, session, result)

	tier, err := s.userService.MedalTier(userID)
	if err == nil {
		result.MedalTier = tier
	}

	return result, nil
}

func (s *SessionService) ByUser(userID string) ([]*model.Session, error) {
	_, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	return s.sessionRepo.ByUser(userID)
}

// forwardToActiveGoal recomputes the active attempt's progress including this
// session and completes the attempt when the percentage reaches 100. The
// finish write is conditional on finish still being null, so a concurrent
// save cannot double-claim the completion; medal re-evaluation is idempotent
// either way.
func (s *SessionService) forwardToActiveGoal(userID string, session *model.Session, result *SaveResult) {
	ug, err := s.userGoalRepo.ActiveByUser(userID)
	if err == repository.ErrNoActiveGoal {
		return
	}
	if err != nil {
		slog.Error("failed to load active goal", "error", err, "user_id", userID, "session_id", session.ID)
		result.SideEffects = SideEffectsPartial
		return
	}

	goal, err := s.goalRepo.ByID(ug.GoalID)
	if err != nil {
		slog.Error("failed to load goal for active attempt", "error", err, "user_id", userID, "goal_id", ug.GoalID)
		result.SideEffects = SideEffectsPartial
		return
	}

	totals, err := s.sessionRepo.TotalsSince(userID, ug.Start)
	if err != nil {
		slog.Error("failed to aggregate goal progress", "error", err, "user_id", userID, "user_goal_id", ug.ID)
		result.SideEffects = SideEffectsPartial
		return
	}

	percent := progression.Percent(goal, totals.Distance, totals.Time)
	if !progression.Complete(percent) {
		return
	}

	finished, err := s.userGoalRepo.Finish(ug.ID, time.Now())
	if err != nil {
		slog.Error("failed to set goal finish", "error", err, "user_id", userID, "user_goal_id", ug.ID)
		result.SideEffects = SideEffectsPartial
		return
	}

	if finished {
		result.GoalCompleted = true
		slog.Info("goal completed", "user_id", userID, "goal_id", goal.ID, "position", goal.Position)
	}

	tier, err := s.userService.ReevaluateMedal(userID)
	if err != nil {
		slog.Error("failed to re-evaluate medal tier", "error", err, "user_id", userID)
		result.SideEffects = SideEffectsPartial
		return
	}

	result.MedalTier = tier
}
