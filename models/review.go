package models

import "time"

// Review is a customer review of an event held at the venue.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	Event     string    `bson:"event" json:"event"`
	Reviewer  string    `bson:"reviewer" json:"reviewer"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
