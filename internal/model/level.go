package model

// Level is tier metadata for one block of 4 goals. The linkage is purely
// positional: the i-th level covers goal positions 4i+1..4i+4.
type Level struct {
	ID       string `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Note     string `db:"note" json:"note"`
	Position int    `db:"position" json:"position"`
}
