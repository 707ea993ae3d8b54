package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

func f(v float64) *float64 { return &v }

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		goal     *model.Goal
		distance float64 // km
		seconds  float64
		want     float64
	}{
		{
			name:     "distance goal complete",
			goal:     &model.Goal{Distance: f(15)},
			distance: 15,
			want:     100,
		},
		{
			name:     "distance goal partial",
			goal:     &model.Goal{Distance: f(15)},
			distance: 5,
			want:     33.33,
		},
		{
			name:     "time goal complete from seconds",
			goal:     &model.Goal{Time: f(90)},
			seconds:  5400,
			want:     100,
		},
		{
			name:    "time goal partial",
			goal:    &model.Goal{Time: f(60)},
			seconds: 1800,
			want:    50,
		},
		{
			name:     "overshoot clamps at 100",
			goal:     &model.Goal{Distance: f(10)},
			distance: 42,
			want:     100,
		},
		{
			name:     "two axes averaged",
			goal:     &model.Goal{Distance: f(10), Time: f(60)},
			distance: 10,
			seconds:  1800, // 30 of 60 minutes
			want:     75,
		},
		{
			name:     "overshot axis cannot lift an unmet one past its clamp",
			goal:     &model.Goal{Distance: f(10), Time: f(60)},
			distance: 100,
			seconds:  0,
			want:     50,
		},
		{
			name: "no thresholds yields zero",
			goal: &model.Goal{SpeedAvg: f(12)},
			want: 0,
		},
		{
			name: "no sessions yields zero",
			goal: &model.Goal{Distance: f(15), Time: f(90)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.goal, tt.distance, tt.seconds)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestPercentBounds(t *testing.T) {
	goal := &model.Goal{Distance: f(10), Time: f(30)}

	for _, km := range []float64{0, 1, 9.99, 10, 500} {
		for _, sec := range []float64{0, 60, 1800, 999999} {
			p := Percent(goal, km, sec)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
	}
}

func TestPercentMonotonic(t *testing.T) {
	goal := &model.Goal{Distance: f(20)}

	prev := 0.0
	total := 0.0
	for i := 0; i < 10; i++ {
		total += 3.5
		p := Percent(goal, total, 0)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestComplete(t *testing.T) {
	assert.False(t, Complete(99.99))
	assert.True(t, Complete(100))
}
