package repository

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

// SessionTotals is the SQL-side aggregation over a set of sessions.
type SessionTotals struct {
	Distance float64 `db:"total_distance"` // km
	Time     float64 `db:"total_time"`     // seconds
	AvgSpeed float64 `db:"avg_speed"`      // km/h, 0 when no sessions
}

type SessionRepository interface {
	Create(session *model.Session) error
	ByUser(userID string) ([]*model.Session, error)
	TotalsSince(userID string, since time.Time) (*SessionTotals, error)
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create appends a session. Sessions are immutable: there is no update or
// delete path in the core.
func (r *sessionRepository) Create(session *model.Session) error {
	query := `INSERT INTO sessions (id, user_id, distance, speed_avg, heart_rate_avg, calories, time, session_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		session.ID,
		session.UserID,
		session.Distance,
		session.SpeedAvg,
		session.HeartRateAvg,
		session.Calories,
		session.Time,
		session.SessionDate,
	)

	return err
}

func (r *sessionRepository) ByUser(userID string) ([]*model.Session, error) {
	var sessions []*model.Session
	query := `SELECT * FROM sessions WHERE user_id = $1 ORDER BY session_date DESC`

	err := r.db.Select(&sessions, query, userID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) TotalsSince(userID string, since time.Time) (*SessionTotals, error) {
	totals := &SessionTotals{}
	query := `SELECT COALESCE(SUM(distance), 0) AS total_distance,
	                 COALESCE(SUM(time), 0) AS total_time,
	                 COALESCE(AVG(speed_avg), 0) AS avg_speed
	          FROM sessions
	          WHERE user_id = $1 AND session_date >= $2`

	err := r.db.Get(totals, query, userID, since)
	if err != nil {
		return nil, err
	}

	return totals, nil
}
