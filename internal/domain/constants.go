package domain

// Business-hours window: a slot may start at any full hour from
// BusinessDayStartHour through BusinessDayEndHour inclusive.
// The upper boundary is deliberately 19 (a slot starting at 19:00 is
// accepted) even though the product copy talks about "until 5pm";
// kept as-is pending a product decision.
const (
	BusinessDayStartHour = 8
	BusinessDayEndHour   = 19
)

// SlotsPerDay количество часовых слотов в рабочем дне
const SlotsPerDay = BusinessDayEndHour - BusinessDayStartHour + 1

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
