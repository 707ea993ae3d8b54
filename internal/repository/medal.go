package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

type MedalRepository interface {
	Create(medal *model.Medal) error
	Catalog() ([]*model.Medal, error)
}

type medalRepository struct {
	db *sqlx.DB
}

func NewMedalRepository(db *sqlx.DB) MedalRepository {
	return &medalRepository{db: db}
}

func (r *medalRepository) Create(medal *model.Medal) error {
	query := `INSERT INTO medals (id, title, note, icon, position)
	          VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM medals))
	          RETURNING position`

	return r.db.QueryRow(query, medal.ID, medal.Title, medal.Note, medal.Icon).Scan(&medal.Position)
}

func (r *medalRepository) Catalog() ([]*model.Medal, error) {
	var medals []*model.Medal
	query := `SELECT * FROM medals ORDER BY position ASC`

	err := r.db.Select(&medals, query)
	if err != nil {
		return nil, err
	}

	return medals, nil
}
