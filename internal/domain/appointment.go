package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a one-hour booking of a provider by a user.
// Date is always truncated to the start of the hour; for a given
// provider no two appointments may share the same Date (enforced by a
// unique constraint at the storage level).
type Appointment struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	UserID     uuid.UUID
	Date       time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the appointment belongs to the given user
func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}
