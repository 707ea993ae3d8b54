package progression

import (
	"math"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

// Percent computes a goal's completion percentage from cumulative distance
// (km) and time (seconds) accumulated since the attempt started.
//
// Each defined threshold contributes min(actual/threshold, 1)*100 and the
// result is the arithmetic mean of the contributing axes, rounded to two
// decimals. The per-axis clamp means overshooting one axis never compensates
// for an unmet other axis. A goal with no thresholds yields 0, not an error.
// The speed_avg ceiling is a pace constraint and never a progress axis.
func Percent(goal *model.Goal, totalDistanceKm, totalTimeSeconds float64) float64 {
	var sum float64
	axes := 0

	if goal.Distance != nil && *goal.Distance > 0 {
		sum += axisPercent(totalDistanceKm, *goal.Distance)
		axes++
	}
	if goal.Time != nil && *goal.Time > 0 {
		// Goal time thresholds are minutes, session time is seconds.
		sum += axisPercent(totalTimeSeconds/60, *goal.Time)
		axes++
	}

	if axes == 0 {
		return 0
	}
	return round2(sum / float64(axes))
}

// Complete reports whether a percentage makes the goal eligible for
// completion. The finish timestamp is set by the caller.
func Complete(percent float64) bool {
	return percent >= 100
}

func axisPercent(actual, threshold float64) float64 {
	return math.Min(actual/threshold, 1.0) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
