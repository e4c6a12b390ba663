// Package matching finds interviewers whose declared free time covers a
// requested range and who hold the requested position.
package matching

import (
	"context"
	"slices"
	"strings"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
	"github.com/nikmy/interviewme/pkg/logger"
)

var ErrNoAvailableInterviewer = errors.Error("no available interviewer")

type Query struct {
	When    models.TimeRange
	Company string
	Job     string

	// Exclude is never returned as a candidate, usually the interviewee.
	Exclude string
}

func (q Query) position() models.Job {
	return models.Job{Company: q.Company, Title: q.Job}
}

func New(
	log logger.Logger,
	availability models.AvailabilityRepo,
	persons models.PersonsRepo,
	policy SelectionPolicy,
) *Engine {
	return &Engine{
		log:          log.With("matching"),
		availability: availability,
		persons:      persons,
		policy:       policy,
	}
}

type Engine struct {
	log          logger.Logger
	availability models.AvailabilityRepo
	persons      models.PersonsRepo
	policy       SelectionPolicy
}

// Candidates returns every eligible interviewer sorted by id.
func (e *Engine) Candidates(ctx context.Context, q Query) ([]models.Person, error) {
	slots, err := e.availability.GetOverlappingForAll(ctx, q.When)
	if err != nil {
		return nil, errors.WrapFail(err, "get availability overlapping range")
	}

	free := make(map[string][]models.TimeRange)
	for _, slot := range slots {
		if slot.Scheduled || slot.PersonID == q.Exclude {
			continue
		}
		free[slot.PersonID] = append(free[slot.PersonID], slot.When)
	}

	position := q.position()
	candidates := make([]models.Person, 0, len(free))
	for personID, ranges := range free {
		if !models.Covered(q.When, ranges) {
			continue
		}

		person, found, err := e.persons.Get(ctx, personID)
		if err != nil {
			return nil, errors.WrapFailf(err, "get person %s", personID)
		}

		if !found {
			e.log.Warnf("availability owner %s is not registered, skipping", personID)
			continue
		}

		if person.Holds(position) {
			candidates = append(candidates, person)
		}
	}

	slices.SortFunc(candidates, func(a, b models.Person) int {
		return strings.Compare(a.ID, b.ID)
	})
	return candidates, nil
}

// Rank returns the candidates in the selection policy's preference order.
func (e *Engine) Rank(ctx context.Context, q Query) ([]models.Person, error) {
	candidates, err := e.Candidates(ctx, q)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, ErrNoAvailableInterviewer
	}

	return e.policy.Rank(candidates), nil
}

func (e *Engine) Match(ctx context.Context, q Query) (models.Person, error) {
	ranked, err := e.Rank(ctx, q)
	if err != nil {
		return models.Person{}, err
	}

	picked := ranked[0]
	e.log.Debugf("picked interviewer %s out of %d for %s", picked.ID, len(ranked), q.When.Start)
	return picked, nil
}
