package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// providerAppointmentsCachePrefix namespace of the cached
// per-provider-per-day appointment list
const providerAppointmentsCachePrefix = "provider-appointments"

// ProviderAppointmentsCacheKey derives the cache key of a provider's
// appointment list for the calendar day of date.
//
// The key is day-granular while bookings are hour-granular: every
// booking of the day invalidates the same list entry. Month and day
// are intentionally not zero-padded ("2020-5-3"); the format is part
// of the key contract shared by the booking and read paths.
func ProviderAppointmentsCacheKey(providerID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s:%s:%d-%d-%d",
		providerAppointmentsCachePrefix,
		providerID,
		date.Year(),
		int(date.Month()),
		date.Day(),
	)
}
