package model

import (
	"time"
)

// Session is one completed activity. Records are append-only: the core never
// mutates or deletes a session once created.
type Session struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	Distance     float64   `db:"distance" json:"distance"`  // km
	SpeedAvg     float64   `db:"speed_avg" json:"speedAvg"` // km/h
	HeartRateAvg float64   `db:"heart_rate_avg" json:"heartRateAvg"`
	Calories     float64   `db:"calories" json:"calories"`
	Time         float64   `db:"time" json:"time"` // seconds
	SessionDate  time.Time `db:"session_date" json:"sessionDate"`
}
