package model

import (
	"time"
)

const (
	GoalStatusLocked     = "locked"
	GoalStatusUnlocked   = "unlocked"
	GoalStatusInProgress = "in_progress"
	GoalStatusCompleted  = "completed"
)

// Goal is a catalog entry. Position is globally unique and strictly
// increasing; it is assigned at insert time and never reused.
type Goal struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Note        string    `db:"note" json:"note"`
	Position    int       `db:"position" json:"position"`
	Distance    *float64  `db:"distance" json:"distance,omitempty"`  // km
	Time        *float64  `db:"time" json:"time,omitempty"`          // minutes
	SpeedAvg    *float64  `db:"speed_avg" json:"speedAvg,omitempty"` // km/h ceiling
	Icon        string    `db:"icon" json:"icon"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// HasThresholds reports whether the goal defines at least one progress axis.
// SpeedAvg is a pace constraint, not a progress axis.
func (g *Goal) HasThresholds() bool {
	return g.Distance != nil || g.Time != nil
}
