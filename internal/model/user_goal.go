package model

import (
	"time"
)

// UserGoal binds a user to a catalog goal. Finish is null while the attempt
// is active; a user has at most one active attempt at a time.
type UserGoal struct {
	ID     string     `db:"id" json:"id"`
	UserID string     `db:"user_id" json:"userId"`
	GoalID string     `db:"goal_id" json:"goalId"`
	Start  time.Time  `db:"start" json:"start"`
	Finish *time.Time `db:"finish" json:"finish,omitempty"`
}

func (ug *UserGoal) Active() bool {
	return ug.Finish == nil
}

// GoalStats is the aggregate over a user's sessions since a goal's start.
type GoalStats struct {
	TotalDistance   float64 `json:"totalDistance"` // km
	TotalTime       float64 `json:"totalTime"`     // seconds
	AvgSpeed        float64 `json:"avgSpeed"`      // km/h
	ProgressPercent float64 `json:"progressPercent"`
}
