package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nikmy/interviewme/internal/repo/models"
)

func newAvailability(newID func() string) *availability {
	return &availability{
		newID: newID,
		data:  make(map[string]models.Availability),
	}
}

type availability struct {
	mu    sync.RWMutex
	newID func() string
	data  map[string]models.Availability
}

func (a *availability) Create(_ context.Context, slot models.Availability) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if slot.ID == "" {
		slot.ID = a.newID()
	}
	a.data[slot.ID] = slot
	return slot.ID, nil
}

func (a *availability) GetInRangeForAll(_ context.Context, min, max time.Time) ([]models.Availability, error) {
	window := models.TimeRange{Start: min, End: max}
	return a.selectWhere(func(slot models.Availability) bool {
		return window.Contains(slot.When)
	}), nil
}

func (a *availability) GetInRangeForUser(
	_ context.Context,
	personID string,
	min, max time.Time,
) ([]models.Availability, error) {
	window := models.TimeRange{Start: min, End: max}
	return a.selectWhere(func(slot models.Availability) bool {
		return slot.PersonID == personID && window.Contains(slot.When)
	}), nil
}

func (a *availability) GetOverlappingForAll(_ context.Context, when models.TimeRange) ([]models.Availability, error) {
	return a.selectWhere(func(slot models.Availability) bool {
		return slot.When.Overlaps(when)
	}), nil
}

func (a *availability) GetOverlappingForUser(
	_ context.Context,
	personID string,
	when models.TimeRange,
) ([]models.Availability, error) {
	return a.selectWhere(func(slot models.Availability) bool {
		return slot.PersonID == personID && slot.When.Overlaps(when)
	}), nil
}

func (a *availability) Update(_ context.Context, slot models.Availability) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.data[slot.ID] = slot
	return nil
}

func (a *availability) SetScheduled(_ context.Context, id string, from, to bool) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	slot, ok := a.data[id]
	if !ok || slot.Scheduled != from {
		return false, nil
	}

	a.data[id] = slot.WithScheduled(to)
	return true, nil
}

func (a *availability) selectWhere(pred func(models.Availability) bool) []models.Availability {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var selected []models.Availability
	for _, slot := range a.data {
		if pred(slot) {
			selected = append(selected, slot)
		}
	}

	models.SortAvailability(selected)
	return selected
}
