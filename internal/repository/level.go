package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

type LevelRepository interface {
	Create(level *model.Level) error
	Catalog() ([]*model.Level, error)
}

type levelRepository struct {
	db *sqlx.DB
}

func NewLevelRepository(db *sqlx.DB) LevelRepository {
	return &levelRepository{db: db}
}

func (r *levelRepository) Create(level *model.Level) error {
	query := `INSERT INTO levels (id, title, note, position)
	          VALUES ($1, $2, $3, (SELECT COALESCE(MAX(position), 0) + 1 FROM levels))
	          RETURNING position`

	return r.db.QueryRow(query, level.ID, level.Title, level.Note).Scan(&level.Position)
}

func (r *levelRepository) Catalog() ([]*model.Level, error) {
	var levels []*model.Level
	query := `SELECT * FROM levels ORDER BY position ASC`

	err := r.db.Select(&levels, query)
	if err != nil {
		return nil, err
	}

	return levels, nil
}
