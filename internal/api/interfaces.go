package api

import (
	"context"
	"time"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/internal/scheduling"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type Scheduler interface {
	Schedule(ctx context.Context, req scheduling.Request) (models.Interview, error)
	ListForPerson(ctx context.Context, personID string, loc *time.Location, now time.Time) ([]scheduling.View, error)
	SubmitFeedback(ctx context.Context, actorID, interviewID string, answers []string) error
	Cancel(ctx context.Context, actorID, interviewID string) error
	ShadowCandidates(ctx context.Context, position models.Job, from, to time.Time) ([]models.Interview, error)
	AttachShadow(ctx context.Context, actorID, interviewID string) (models.Interview, error)
	DeclareAvailability(ctx context.Context, personID string, when models.TimeRange) (string, error)
	SaveProfile(ctx context.Context, person models.Person) error
}
