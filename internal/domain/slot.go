package domain

// HourSlot represents the availability of a single bookable hour of a
// provider's day
type HourSlot struct {
	Hour      int
	Available bool
}
