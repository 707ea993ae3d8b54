package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/db"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
)

// Seeded catalog goal IDs (see internal/db/migrations). Positions 1..8.
const (
	goalFirstSteps = "g-first-steps" // position 1, distance 5
	goalHalfHour   = "g-half-hour"   // position 2, time 30
	goalTenK       = "g-ten-k"       // position 3, distance 10
	goalSteadyHour = "g-steady-hour" // position 4, time 60
	goalFifteenK   = "g-fifteen-k"   // position 5, distance 15
	goalNinetyMin  = "g-ninety-min"  // position 6, time 90
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

type testEnv struct {
	db           *sqlx.DB
	userRepo     repository.UserRepository
	goalRepo     repository.GoalRepository
	levelRepo    repository.LevelRepository
	medalRepo    repository.MedalRepository
	sessionRepo  repository.SessionRepository
	userGoalRepo repository.UserGoalRepository

	users    *UserService
	goals    *GoalService
	sessions *SessionService
	catalog  *CatalogService
	feed     *FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database := newTestDB(t)

	env := &testEnv{
		db:           database,
		userRepo:     repository.NewUserRepository(database),
		goalRepo:     repository.NewGoalRepository(database),
		levelRepo:    repository.NewLevelRepository(database),
		medalRepo:    repository.NewMedalRepository(database),
		sessionRepo:  repository.NewSessionRepository(database),
		userGoalRepo: repository.NewUserGoalRepository(database),
	}

	env.users = NewUserService(env.userRepo, env.sessionRepo, env.userGoalRepo)
	env.goals = NewGoalService(env.goalRepo, env.userGoalRepo, env.sessionRepo)
	env.sessions = NewSessionService(env.sessionRepo, env.userRepo, env.userGoalRepo, env.goalRepo, env.users)
	env.catalog = NewCatalogService(env.goalRepo, env.levelRepo, env.medalRepo)
	env.feed = NewFeedService(env.catalog, env.userGoalRepo)

	return env
}

func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()

	user, err := e.users.Register(email, "Test Runner")
	require.NoError(t, err)
	return user.ID
}

// completeGoal records a finished attempt directly, the durable state the
// medal calculator reads.
func (e *testEnv) completeGoal(t *testing.T, userID, goalID string) {
	t.Helper()

	ug, err := e.goals.Start(userID, goalID)
	require.NoError(t, err)

	_, err = e.goals.Finish(ug.ID, ug.Start.Add(time.Hour))
	require.NoError(t, err)
}
