package model

import (
	"time"
)

type User struct {
	ID              string    `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	Name            string    `db:"name" json:"name"`
	TotalKilometers float64   `db:"total_kilometers" json:"totalKilometers"`
	Medal           int       `db:"medal" json:"medal"` // tier, monotonically non-decreasing
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}
