package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

var (
	ErrUserGoalNotFound = errors.New("user goal not found")
	ErrNoActiveGoal     = errors.New("no active goal")
	ErrActiveGoalExists = errors.New("user already has an active goal")
)

type UserGoalRepository interface {
	Create(ug *model.UserGoal) error
	ByID(id string) (*model.UserGoal, error)
	ByUser(userID string) ([]*model.UserGoal, error)
	ActiveByUser(userID string) (*model.UserGoal, error)
	Finish(id string, finish time.Time) (bool, error)
	CompletedPositions(userID string) ([]int, error)
	Delete(id string) error
}

type userGoalRepository struct {
	db *sqlx.DB
}

func NewUserGoalRepository(db *sqlx.DB) UserGoalRepository {
	return &userGoalRepository{db: db}
}

// Create starts a goal attempt. The partial unique index on
// user_goals(user_id) WHERE finish IS NULL makes concurrent double-starts
// lose at the database, not in application code.
func (r *userGoalRepository) Create(ug *model.UserGoal) error {
	query := `INSERT INTO user_goals (id, user_id, goal_id, start, finish)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, ug.ID, ug.UserID, ug.GoalID, ug.Start, ug.Finish)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrActiveGoalExists
		}
		return err
	}

	return nil
}

func (r *userGoalRepository) ByID(id string) (*model.UserGoal, error) {
	ug := &model.UserGoal{}
	query := `SELECT * FROM user_goals WHERE id = $1`

	err := r.db.Get(ug, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserGoalNotFound
	}

	return ug, err
}

func (r *userGoalRepository) ByUser(userID string) ([]*model.UserGoal, error) {
	var ugs []*model.UserGoal
	query := `SELECT * FROM user_goals WHERE user_id = $1 ORDER BY start ASC`

	err := r.db.Select(&ugs, query, userID)
	if err != nil {
		return nil, err
	}

	return ugs, nil
}

func (r *userGoalRepository) ActiveByUser(userID string) (*model.UserGoal, error) {
	ug := &model.UserGoal{}
	query := `SELECT * FROM user_goals WHERE user_id = $1 AND finish IS NULL`

	err := r.db.Get(ug, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrNoActiveGoal
	}

	return ug, err
}

// Finish sets the finish timestamp only while it is still null, so two
// concurrent completion checks cannot both claim the transition. Returns
// whether this call made the transition.
func (r *userGoalRepository) Finish(id string, finish time.Time) (bool, error) {
	query := `UPDATE user_goals SET finish = $1 WHERE id = $2 AND finish IS NULL`

	result, err := r.db.Exec(query, finish, id)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}

// CompletedPositions returns the catalog positions of the user's finished
// goals, the durable input to medal tier recomputation.
func (r *userGoalRepository) CompletedPositions(userID string) ([]int, error) {
	var positions []int
	query := `SELECT g.position FROM user_goals ug
	          JOIN goals g ON g.id = ug.goal_id
	          WHERE ug.user_id = $1 AND ug.finish IS NOT NULL
	          ORDER BY g.position ASC`

	err := r.db.Select(&positions, query, userID)
	if err != nil {
		return nil, err
	}

	return positions, nil
}

// Delete removes an attempt. Only explicit user abandonment reaches this.
func (r *userGoalRepository) Delete(id string) error {
	query := `DELETE FROM user_goals WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserGoalNotFound
	}

	return nil
}
