package models

import "time"

// TimedEvent is a diary entry to be laid out on the day grid. StartSlot and
// EndSlot index the grid (inclusive on both ends); Start and End are wall
// clock values used for sorting and display only.
type TimedEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Room      string    `json:"room"`
	StartSlot int       `json:"start_slot"`
	EndSlot   int       `json:"end_slot"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Column    int       `json:"column"` // assigned by the layout engine
}
