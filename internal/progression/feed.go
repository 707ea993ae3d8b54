package progression

import (
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

// Interleave merges the level, goal and medal catalogs into the single
// presentation sequence: level, four goals, medal, repeated per block for
// ceil(goalCount/4) blocks. All three inputs must be ordered by position.
// Goal rows carry the status resolved for this user; when the level or medal
// catalog is shorter than the goal catalog implies, the missing slot is
// skipped rather than invented.
func Interleave(levels []*model.Level, goals []*model.Goal, statuses map[string]string, medals []*model.Medal) []model.FeedItem {
	if len(goals) == 0 {
		return []model.FeedItem{}
	}

	blocks := (len(goals) + BlockSize - 1) / BlockSize
	feed := make([]model.FeedItem, 0, len(goals)+2*blocks)

	for b := 0; b < blocks; b++ {
		if b < len(levels) {
			feed = append(feed, model.FeedItem{Kind: model.FeedItemLevel, Level: levels[b]})
		}
		for i := b * BlockSize; i < (b+1)*BlockSize && i < len(goals); i++ {
			feed = append(feed, model.FeedItem{
				Kind:   model.FeedItemGoal,
				Goal:   goals[i],
				Status: statuses[goals[i].ID],
			})
		}
		if b < len(medals) {
			feed = append(feed, model.FeedItem{Kind: model.FeedItemMedal, Medal: medals[b]})
		}
	}

	return feed
}

// CatalogAligned reports whether the level and medal catalogs cover every
// block the goal catalog implies. Misalignment is a configuration smell the
// caller logs; the feed itself degrades gracefully.
func CatalogAligned(levels []*model.Level, goals []*model.Goal, medals []*model.Medal) bool {
	blocks := (len(goals) + BlockSize - 1) / BlockSize
	return len(levels) >= blocks && len(medals) >= blocks
}
