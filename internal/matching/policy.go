package matching

import (
	"math/rand"
	"slices"
	"strings"
	"sync"

	"github.com/nikmy/interviewme/internal/repo/models"
)

// SelectionPolicy orders eligible interviewers by preference. The result must
// be a permutation of candidates: the first element is the one Match picks.
type SelectionPolicy interface {
	Rank(candidates []models.Person) []models.Person
}

type PolicyKind string

const (
	PolicyRandom PolicyKind = "random"
	PolicyFirst  PolicyKind = "first"
)

func NewPolicy(kind PolicyKind, seed int64) SelectionPolicy {
	switch kind {
	case PolicyFirst:
		return FirstPolicy{}
	default:
		return NewRandomPolicy(seed)
	}
}

// NewRandomPolicy picks uniformly at random. Zero seed means seeding from
// the global source.
func NewRandomPolicy(seed int64) *RandomPolicy {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &RandomPolicy{rnd: rand.New(rand.NewSource(seed))}
}

type RandomPolicy struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (p *RandomPolicy) Rank(candidates []models.Person) []models.Person {
	ranked := slices.Clone(candidates)

	p.mu.Lock()
	p.rnd.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	p.mu.Unlock()

	return ranked
}

// FirstPolicy prefers the lowest person id.
type FirstPolicy struct{}

func (FirstPolicy) Rank(candidates []models.Person) []models.Person {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b models.Person) int {
		return strings.Compare(a.ID, b.ID)
	})
	return ranked
}
