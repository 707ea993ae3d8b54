package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/db"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)"

	database, err := db.Init("sqlite", dsn)
	require.NoError(t, err)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Close() })
	return database
}

func createTestUserModel(email string) *model.User {
	return &model.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      "Test Runner",
		CreatedAt: time.Now(),
	}
}

func createTestUser(t *testing.T, repo UserRepository, email string) *model.User {
	t.Helper()

	user := createTestUserModel(email)
	require.NoError(t, repo.Create(user))
	return user
}
