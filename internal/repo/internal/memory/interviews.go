package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
)

func newInterviews(newID func() string) *interviews {
	return &interviews{
		newID: newID,
		data:  make(map[string]models.Interview),
	}
}

type interviews struct {
	mu    sync.RWMutex
	newID func() string
	data  map[string]models.Interview
}

func (r *interviews) Get(_ context.Context, id string) (models.Interview, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.data[id]
	return i, ok, nil
}

func (r *interviews) GetInRange(_ context.Context, min, max time.Time) ([]models.Interview, error) {
	window := models.TimeRange{Start: min, End: max}
	return r.selectWhere(func(i models.Interview) bool {
		return window.Contains(i.When)
	}), nil
}

func (r *interviews) GetForPositionWithoutShadowInRange(
	_ context.Context,
	position models.Job,
	min, max time.Time,
) ([]models.Interview, error) {
	window := models.TimeRange{Start: min, End: max}
	return r.selectWhere(func(i models.Interview) bool {
		return window.Contains(i.When) && i.Position == position && !i.HasShadow()
	}), nil
}

func (r *interviews) GetForPerson(_ context.Context, personID string) ([]models.Interview, error) {
	return r.selectWhere(func(i models.Interview) bool {
		return i.Participant(personID) != models.RoleNone
	}), nil
}

func (r *interviews) GetScheduledInterviewsInRangeForUser(
	_ context.Context,
	personID string,
	min, max time.Time,
) ([]models.Interview, error) {
	window := models.TimeRange{Start: min, End: max}
	return r.selectWhere(func(i models.Interview) bool {
		return i.Participant(personID) != models.RoleNone && window.Contains(i.When)
	}), nil
}

func (r *interviews) Create(_ context.Context, interview models.Interview) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	if _, taken := r.data[id]; taken {
		return "", errors.Error("generated interview id %s is already taken", id)
	}

	interview.ID = id
	r.data[id] = interview
	return id, nil
}

func (r *interviews) Update(_ context.Context, interview models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[interview.ID] = interview
	return nil
}

func (r *interviews) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, id)
	return nil
}

func (r *interviews) selectWhere(pred func(models.Interview) bool) []models.Interview {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var selected []models.Interview
	for _, i := range r.data {
		if pred(i) {
			selected = append(selected, i)
		}
	}

	models.SortInterviews(selected)
	return selected
}
