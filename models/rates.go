package models

// RoomRates is the 4-tuple tariff for one of the named rooms.
type RoomRates struct {
	Hourly           float64 `mapstructure:"hourly" json:"hourly"`
	MorningAfternoon float64 `mapstructure:"morning_afternoon" json:"morning_afternoon"`
	AllDay           float64 `mapstructure:"all_day" json:"all_day"`
	Week             float64 `mapstructure:"week" json:"week"`
}

// RateTable maps a room's display name to its tariff.
type RateTable map[string]RoomRates

// HallRates is the per-date tariff for a hall-like category (Main Hall,
// Small Hall, Rehearsal Space, whole Venue). Fields a category does not
// use are zero: the Venue hire has no hourly rate, the Rehearsal Space
// has no evening rate.
type HallRates struct {
	Hourly  float64 `bson:"hourly" json:"hourly"`
	Evening float64 `bson:"evening" json:"evening"`
	Daily   float64 `bson:"daily" json:"daily"`
	Weekly  float64 `bson:"weekly" json:"weekly"`
}

// HallTariff is a stored tariff row. A row applies to bookings on or after
// EffectiveFrom until superseded by a later row for the same category.
type HallTariff struct {
	Category      RoomCategory `bson:"category" json:"category"`
	EffectiveFrom string       `bson:"effective_from" json:"effective_from"` // "YYYY-MM-DD"
	Rates         HallRates    `bson:"rates" json:"rates"`
}

// DurationBucket classifies a single-day room booking by length.
type DurationBucket string

const (
	BucketOneHour          DurationBucket = "1 Hour"
	BucketMorningAfternoon DurationBucket = "Morning/Afternoon"
	BucketAllDay           DurationBucket = "All Day"
	BucketWeek             DurationBucket = "Week"
)

// BucketForHours maps a whole-hour duration onto a duration bucket.
func BucketForHours(hours int) DurationBucket {
	switch {
	case hours <= 1:
		return BucketOneHour
	case hours <= 4:
		return BucketMorningAfternoon
	default:
		return BucketAllDay
	}
}

// Rate returns the tariff entry for a duration bucket.
func (r RoomRates) Rate(bucket DurationBucket) float64 {
	switch bucket {
	case BucketOneHour:
		return r.Hourly
	case BucketMorningAfternoon:
		return r.MorningAfternoon
	case BucketWeek:
		return r.Week
	default:
		return r.AllDay
	}
}
