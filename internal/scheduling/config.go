package scheduling

import (
	"time"

	"github.com/nikmy/interviewme/internal/matching"
)

type Config struct {
	// Duration of every interview, an hour when unset.
	Duration time.Duration `yaml:"duration" validate:"gte=0"`

	// BaseURL prefixes feedback form links sent to participants.
	BaseURL string `yaml:"baseUrl" validate:"required,url"`

	Policy matching.PolicyKind `yaml:"policy" validate:"omitempty,oneof=random first"`
	Seed   int64               `yaml:"seed"`

	// ClaimSlots reserves the interviewer's availability with a conditional
	// update before the interview is stored, so concurrent requests cannot
	// book the same person twice.
	ClaimSlots bool `yaml:"claimSlots"`
}

const (
	defaultDuration = time.Hour
	startedLeeway   = 5 * time.Minute
)

func (c Config) duration() time.Duration {
	if c.Duration <= 0 {
		return defaultDuration
	}
	return c.Duration
}
