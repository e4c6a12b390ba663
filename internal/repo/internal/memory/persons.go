package memory

import (
	"context"
	"sync"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
)

func newPersons() *persons {
	return &persons{data: make(map[string]models.Person)}
}

type persons struct {
	mu   sync.RWMutex
	data map[string]models.Person
}

func (p *persons) Get(_ context.Context, id string) (models.Person, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	person, ok := p.data[id]
	return person, ok, nil
}

func (p *persons) Upsert(_ context.Context, person models.Person) error {
	if person.ID == "" {
		return errors.Error("person id is empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.data[person.ID] = person
	return nil
}
