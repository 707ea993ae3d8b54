package model

// Medal is the reward for completing one block of 4 goals, positionally
// matched to blocks the same way Level is.
type Medal struct {
	ID       string `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Note     string `db:"note" json:"note"`
	Icon     string `db:"icon" json:"icon"`
	Position int    `db:"position" json:"position"`
}
