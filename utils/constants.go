// File: utils/constants.go
package utils

import "time"

// The diary grid runs from 10:00 to midnight in one-hour slots. An event
// starting at 10:00 occupies slot 0; one starting at midnight occupies the
// final slot.
const (
	DayStartHour = 10
	DayEndHour   = 24
	SlotsPerDay  = DayEndHour - DayStartHour + 1
)

// Evening tariffs apply to hall bookings starting at or after 17:00.
const EveningStartHour = 17

// DiaryCachePrefix is the prefix used for Redis diary view cache keys.
const DiaryCachePrefix = "diary:"

// DiaryCacheTTL is the time-to-live for cached diary views.
const DiaryCacheTTL = 5 * time.Minute

// TariffCachePrefix is the prefix used for Redis tariff cache keys.
const TariffCachePrefix = "tariff:"

// TariffCacheTTL is the time-to-live for cached hall tariffs.
const TariffCacheTTL = 30 * time.Minute
