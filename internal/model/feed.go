package model

const (
	FeedItemLevel = "level"
	FeedItemGoal  = "goal"
	FeedItemMedal = "medal"
)

// FeedItem is one row of the combined presentation feed. Exactly one of
// Level, Goal, Medal is set, matching Kind.
type FeedItem struct {
	Kind   string `json:"kind"`
	Level  *Level `json:"level,omitempty"`
	Goal   *Goal  `json:"goal,omitempty"`
	Medal  *Medal `json:"medal,omitempty"`
	Status string `json:"status,omitempty"` // goal rows only
}
