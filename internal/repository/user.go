package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
	AddKilometers(id string, km float64) error
	UpgradeMedal(id string, tier int) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (id, email, name, total_kilometers, medal, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, user.ID, user.Email, user.Name, user.TotalKilometers, user.Medal, user.CreatedAt)
	if err != nil {
		// Unique constraint violation (SQLite and PostgreSQL wordings)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

// AddKilometers increments the rolling distance counter in a single UPDATE so
// concurrent session saves for the same user never lose an increment.
func (r *userRepository) AddKilometers(id string, km float64) error {
	query := `UPDATE users SET total_kilometers = total_kilometers + $1 WHERE id = $2`

	result, err := r.db.Exec(query, km, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpgradeMedal raises the stored tier. The tier is monotonic: an update that
// would lower it is a no-op, not an error, so replayed evaluations are safe.
func (r *userRepository) UpgradeMedal(id string, tier int) error {
	query := `UPDATE users SET medal = $1 WHERE id = $2 AND medal < $1`

	_, err := r.db.Exec(query, tier, id)
	return err
}
