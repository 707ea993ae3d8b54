package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.Register("runner@example.com", "Ana")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Zero(t, user.TotalKilometers)
	assert.Zero(t, user.Medal)

	_, err = env.users.Register("runner@example.com", "Ana otra vez")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestMedalTierAfterFirstBlock(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "runner@example.com")

	// Complete positions 1-4 (the first block).
	for _, goalID := range []string{goalFirstSteps, goalHalfHour, goalTenK, goalSteadyHour} {
		env.completeGoal(t, userID, goalID)
	}

	tier, err := env.users.ReevaluateMedal(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, tier)

	// Position 6 without position 5 does not complete block 1.
	env.completeGoal(t, userID, goalNinetyMin)

	tier, err = env.users.ReevaluateMedal(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, tier)
}

func TestMedalTierNeverDecreases(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "runner@example.com")

	for _, goalID := range []string{goalFirstSteps, goalHalfHour, goalTenK, goalSteadyHour} {
		env.completeGoal(t, userID, goalID)
	}

	tier, err := env.users.ReevaluateMedal(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, tier)

	// Re-evaluating from the same durable state yields the same tier.
	for i := 0; i < 3; i++ {
		tier, err = env.users.ReevaluateMedal(userID)
		require.NoError(t, err)
		assert.Equal(t, 1, tier)
	}

	stored, err := env.users.MedalTier(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
}

func TestAggregateStats(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "runner@example.com")

	_, err := env.sessions.Save(userID, SessionInput{Distance: 5, SpeedAvg: 10, Time: 1800})
	require.NoError(t, err)
	_, err = env.sessions.Save(userID, SessionInput{Distance: 3, SpeedAvg: 12, Time: 900})
	require.NoError(t, err)

	for _, period := range []string{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear} {
		stats, err := env.users.AggregateStats(userID, period)
		require.NoError(t, err)
		assert.Equal(t, period, stats.Period)
		assert.InDelta(t, 8.0, stats.TotalDistance, 0.001)
		assert.InDelta(t, 2700.0, stats.TotalTime, 0.001)
		assert.InDelta(t, 11.0, stats.AvgSpeed, 0.001)
	}
}

func TestAggregateStatsInvalidPeriod(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "runner@example.com")

	_, err := env.users.AggregateStats(userID, "decade")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestAggregateStatsUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.AggregateStats("missing", PeriodWeek)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
