package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(id string) (*model.Goal, error)
	Catalog() ([]*model.Goal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Create inserts a catalog goal, assigning position as max(position)+1. The
// subquery runs inside the INSERT so concurrent inserts cannot hand out the
// same position; the loser fails the unique index and the caller may retry.
func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, title, description, note, position, distance, time, speed_avg, icon, created_at)
	          VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM goals), $5, $6, $7, $8, $9)
	          RETURNING position`

	return r.db.QueryRow(query,
		goal.ID,
		goal.Title,
		goal.Description,
		goal.Note,
		goal.Distance,
		goal.Time,
		goal.SpeedAvg,
		goal.Icon,
		goal.CreatedAt,
	).Scan(&goal.Position)
}

func (r *goalRepository) ByID(id string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Catalog() ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals ORDER BY position ASC`

	err := r.db.Select(&goals, query)
	if err != nil {
		return nil, err
	}

	return goals, nil
}
