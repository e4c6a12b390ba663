package models

import (
	"context"
	"time"
)

type AvailabilityRepo interface {
	// Create stores a new free time slot and returns its id.
	Create(ctx context.Context, a Availability) (id string, err error)

	// GetInRangeForAll returns slots of all persons lying inside [min, max].
	GetInRangeForAll(ctx context.Context, min, max time.Time) ([]Availability, error)

	// GetInRangeForUser is GetInRangeForAll restricted to one person.
	GetInRangeForUser(ctx context.Context, personID string, min, max time.Time) ([]Availability, error)

	// GetOverlappingForAll returns slots of all persons sharing at least one instant with when.
	GetOverlappingForAll(ctx context.Context, when TimeRange) ([]Availability, error)

	// GetOverlappingForUser returns person's slots sharing at least one instant with when.
	GetOverlappingForUser(ctx context.Context, personID string, when TimeRange) ([]Availability, error)

	// Update upserts the slot by id.
	Update(ctx context.Context, a Availability) error

	// SetScheduled sets Scheduled to `to` only if it currently equals `from`.
	// Reports whether the slot was found in the `from` state.
	SetScheduled(ctx context.Context, id string, from, to bool) (bool, error)
}

type Availability struct {
	ID        string    `json:"id"        bson:"_id"`
	PersonID  string    `json:"person_id" bson:"person_id"`
	When      TimeRange `json:"when"      bson:"when"`
	Scheduled bool      `json:"scheduled" bson:"scheduled"`
}

const (
	AvailabilityFieldID        = "_id"
	AvailabilityFieldPersonID  = "person_id"
	AvailabilityFieldWhen      = "when"
	AvailabilityFieldScheduled = "scheduled"
)

func (a Availability) WithScheduled(scheduled bool) Availability {
	a.Scheduled = scheduled
	return a
}
