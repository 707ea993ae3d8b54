package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/app"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/config"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/db"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/service"
)

func newTestServer(t *testing.T) (*httptest.Server, *app.App) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)"

	database, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	cfg := &config.Config{
		AppName:   "generareco-test",
		AppEnv:    "development",
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}

	userRepo := repository.NewUserRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	levelRepo := repository.NewLevelRepository(database)
	medalRepo := repository.NewMedalRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	userGoalRepo := repository.NewUserGoalRepository(database)

	userService := service.NewUserService(userRepo, sessionRepo, userGoalRepo)
	catalogService := service.NewCatalogService(goalRepo, levelRepo, medalRepo)

	a := &app.App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry),
		UserService:    userService,
		CatalogService: catalogService,
		GoalService:    service.NewGoalService(goalRepo, userGoalRepo, sessionRepo),
		SessionService: service.NewSessionService(sessionRepo, userRepo, userGoalRepo, goalRepo, userService),
		FeedService:    service.NewFeedService(catalogService, userGoalRepo),
	}

	server := httptest.NewServer(SetupRoutes(a))
	t.Cleanup(func() {
		server.Close()
		_ = a.Close()
	})

	return server, a
}

func registerAndToken(t *testing.T, a *app.App) string {
	t.Helper()

	user, err := a.UserService.Register("runner@example.com", "Ana")
	require.NoError(t, err)

	token, err := a.AuthService.GenerateJWT(user)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}

func TestFeedEndpoint(t *testing.T) {
	server, a := newTestServer(t)
	token := registerAndToken(t, a)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/feed", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items, ok := body["data"].([]any)
	require.True(t, ok)
	// Seeded catalog: 2 levels + 8 goals + 2 medals.
	assert.Len(t, items, 12)

	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "level", first["kind"])
}

func TestStartGoalAndCheckActive(t *testing.T) {
	server, a := newTestServer(t)
	token := registerAndToken(t, a)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/goals/g-first-steps/start", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["id"])

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/goals/g-first-steps/active", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	active := body["data"].(map[string]any)
	assert.Equal(t, true, active["active"])

	// Starting a second goal while one is active is rejected.
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/goals/g-half-hour/start", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStartUnknownGoalIs404(t *testing.T) {
	server, a := newTestServer(t)
	token := registerAndToken(t, a)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/goals/reto-inventado/start", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}

func TestSaveSessionCompletesGoal(t *testing.T) {
	server, a := newTestServer(t)
	token := registerAndToken(t, a)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/goals/g-fifteen-k/start", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	session := map[string]any{"distance": 5, "speedAvg": 10, "time": 1800}
	for i := 0; i < 2; i++ {
		resp, body := doJSON(t, http.MethodPost, server.URL+"/api/sessions", token, session)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, false, data["goalCompleted"])
	}

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/sessions", token, session)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["goalCompleted"])
	assert.Equal(t, "ok", data["sideEffects"])

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := body["data"].(map[string]any)
	assert.InDelta(t, 15.0, me["totalKilometers"].(float64), 0.001)
}

func TestSaveSessionValidation(t *testing.T) {
	server, a := newTestServer(t)
	token := registerAndToken(t, a)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/sessions", token, map[string]any{"distance": -3})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}

func TestUserStatsEndpoint(t *testing.T) {
	server, a := newTestServer(t)
	token := registerAndToken(t, a)

	session := map[string]any{"distance": 4, "speedAvg": 8, "time": 1800}
	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/sessions", token, session)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/users/me/stats?period=week", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.InDelta(t, 4.0, data["totalDistance"].(float64), 0.001)

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/users/me/stats?period=decade", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMedalEndpoints(t *testing.T) {
	server, a := newTestServer(t)
	token := registerAndToken(t, a)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/users/me/medal", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Zero(t, data["medal"].(float64))

	resp, _ = doJSON(t, http.MethodPut, server.URL+"/api/users/me/medal", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterAndTokenEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/users",
		"", map[string]string{"email": "nueva@example.com", "name": "Nueva"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])

	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/auth/token",
		"", map[string]string{"email": "nueva@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tokenData := body["data"].(map[string]any)
	assert.NotEmpty(t, tokenData["token"])
}
