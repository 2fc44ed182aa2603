package models

import "time"

// RoomCategory identifies the pricing path for a bookable space.
type RoomCategory string

const (
	CategoryMainHall       RoomCategory = "Main_Hall"
	CategorySmallHall      RoomCategory = "Small_Hall"
	CategoryRehearsalSpace RoomCategory = "Rehearsal_Space"
	CategoryVenue          RoomCategory = "Venue" // whole-venue hire
	CategoryRoom           RoomCategory = "Room"  // one of the six named rooms
)

// Booking statuses.
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID         string       `bson:"id" json:"id"`                   // Unique booking reference (UUID)
	Room       string       `bson:"room" json:"room"`               // Display name, e.g. "Dickens Den" or "Main Hall"
	Category   RoomCategory `bson:"category" json:"category"`       // Pricing category
	Client     string       `bson:"client" json:"client"`           // Hirer's name
	Title      string       `bson:"title" json:"title"`             // Event title shown in the diary
	Date       string       `bson:"date" json:"date"`               // First booked day, "YYYY-MM-DD"
	DateEnd    string       `bson:"date_end" json:"date_end"`       // Last booked day, inclusive
	TotalDays  int          `bson:"total_days" json:"total_days"`   // 1 for single-day, 7 for weekly hire
	Start      int          `bson:"start" json:"start"`             // Start time, minutes from midnight
	End        int          `bson:"end" json:"end"`                 // End time, minutes from midnight
	TotalPrice float64      `bson:"total_price" json:"total_price"` // Computed total
	Status     string       `bson:"status" json:"status"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
}

// PricingRequest carries everything the pricing engine needs to quote a
// booking. Times are minutes from midnight.
type PricingRequest struct {
	Category  RoomCategory
	Room      string // required when Category is CategoryRoom
	Date      time.Time
	Start     int
	End       int
	TotalDays int
}

// Hours returns the whole-hour duration of the request (floor).
func (r PricingRequest) Hours() int {
	if r.End <= r.Start {
		return 0
	}
	return (r.End - r.Start) / 60
}
