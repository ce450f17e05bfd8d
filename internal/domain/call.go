package domain

import "time"

// CallVariant selects one of the two identically shaped call collections.
type CallVariant string

const (
	CallVariantTI         CallVariant = "ti"
	CallVariantManutencao CallVariant = "manutencao"
)

// DeadlineDays is how many calendar days a call has until its deadline.
const DeadlineDays = 7

// Call is a support request. Calls are immutable once created and are not
// linked to a User row; email is free text supplied by the requester.
type Call struct {
	ID          string
	Name        string
	Email       string
	Sector      string
	Description string
	CreatedAt   time.Time
	Deadline    time.Time
}

// DeadlineFor computes the deadline for a call created at the given time.
// Calendar-day arithmetic, so it follows DST shifts of the local clock.
func DeadlineFor(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 0, DeadlineDays)
}
