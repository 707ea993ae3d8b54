package progression

import (
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

const (
	// BlockSize is the number of consecutive goal positions covered by one
	// level/medal pair.
	BlockSize = 4

	// bootstrapUnlocked is how many goals a user with no history can see.
	bootstrapUnlocked = 3
)

// Statuses resolves a presentation status for every catalog goal given one
// user's goal history. The catalog must be ordered by position ascending.
//
// A user with no history gets the first three goals unlocked as a preview.
// Otherwise every finished attempt is completed, the active attempt (at most
// one) is in_progress, and exactly one further goal is unlocked: the
// lowest-position goal that is neither completed nor active. Everything else
// stays locked. If the whole catalog is completed, nothing is unlocked.
func Statuses(catalog []*model.Goal, history []*model.UserGoal) map[string]string {
	completed := make(map[string]bool)
	activeGoalID := ""
	for _, ug := range history {
		if ug.Active() {
			activeGoalID = ug.GoalID
		} else {
			completed[ug.GoalID] = true
		}
	}

	statuses := make(map[string]string, len(catalog))

	if len(completed) == 0 && activeGoalID == "" {
		for i, g := range catalog {
			if i < bootstrapUnlocked {
				statuses[g.ID] = model.GoalStatusUnlocked
			} else {
				statuses[g.ID] = model.GoalStatusLocked
			}
		}
		return statuses
	}

	unlockedGiven := false
	for _, g := range catalog {
		switch {
		case completed[g.ID]:
			statuses[g.ID] = model.GoalStatusCompleted
		case g.ID == activeGoalID:
			statuses[g.ID] = model.GoalStatusInProgress
		case !unlockedGiven:
			statuses[g.ID] = model.GoalStatusUnlocked
			unlockedGiven = true
		default:
			statuses[g.ID] = model.GoalStatusLocked
		}
	}

	return statuses
}
