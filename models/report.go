package models

// RoomOccupancy summarises a room's usage over a reporting period.
type RoomOccupancy struct {
	Room        string  `bson:"_id" json:"room"`
	Bookings    int     `bson:"bookings" json:"bookings"`
	BookedHours float64 `bson:"booked_hours" json:"booked_hours"`
	Revenue     float64 `bson:"revenue" json:"revenue"`
}

// OccupancyReport is the report over a date range, one row per room.
type OccupancyReport struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Rooms []RoomOccupancy `json:"rooms"`
}
