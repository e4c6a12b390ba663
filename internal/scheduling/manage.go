package scheduling

import (
	"context"
	"time"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
)

// Cancel deletes the interview and frees the availability it consumed.
// Only participants may cancel, a shadow cancelling just leaves the interview.
func (s *Service) Cancel(ctx context.Context, actorID, interviewID string) error {
	interview, err := s.participantOf(ctx, actorID, interviewID)
	if err != nil {
		return err
	}

	if interview.Participant(actorID) == models.RoleShadow {
		interview.ShadowID = ""
		err = s.interviews.Update(ctx, interview)
		return persistence(errors.WrapFailf(err, "detach shadow from %s", interviewID))
	}

	err = s.interviews.Delete(ctx, interviewID)
	if err != nil {
		return persistence(errors.WrapFailf(err, "delete interview %s", interviewID))
	}

	err = s.setScheduled(ctx, interview.When, true, false, interview.InterviewerID, interview.IntervieweeID)
	if err != nil {
		return persistence(errors.WrapFailf(err, "release availability of %s", interviewID))
	}

	s.log.Infof("interview %s cancelled by %s", interviewID, actorID)
	return nil
}

// ShadowCandidates lists interviews for the position nobody shadows yet.
func (s *Service) ShadowCandidates(ctx context.Context, position models.Job, from, to time.Time) ([]models.Interview, error) {
	if position.IsZero() || !from.Before(to) {
		return nil, invalid(errors.Error("shadow search needs a position and a non-empty range"))
	}

	interviews, err := s.interviews.GetForPositionWithoutShadowInRange(ctx, position, from, to)
	if err != nil {
		return nil, persistence(errors.WrapFail(err, "get interviews without shadow"))
	}

	return interviews, nil
}

// AttachShadow makes the actor an observer of the interview.
func (s *Service) AttachShadow(ctx context.Context, actorID, interviewID string) (models.Interview, error) {
	if actorID == "" {
		return models.Interview{}, invalid(errors.Error("shadow id is empty"))
	}

	interview, found, err := s.interviews.Get(ctx, interviewID)
	if err != nil {
		return models.Interview{}, persistence(errors.WrapFailf(err, "get interview %s", interviewID))
	}
	if !found {
		return models.Interview{}, errors.Mark(errors.Error("interview %s does not exist", interviewID), ErrNotFound)
	}

	switch interview.Participant(actorID) {
	case models.RoleInterviewer, models.RoleInterviewee:
		return models.Interview{}, invalid(errors.Error("%s already takes part in %s", actorID, interviewID))
	case models.RoleShadow:
		return interview, nil
	}

	if interview.HasShadow() {
		return models.Interview{}, errors.Mark(
			errors.Error("interview %s is already shadowed", interviewID),
			ErrConflict,
		)
	}

	interview.ShadowID = actorID
	err = s.interviews.Update(ctx, interview)
	if err != nil {
		return models.Interview{}, persistence(errors.WrapFailf(err, "update interview %s", interviewID))
	}

	return interview, nil
}

// DeclareAvailability stores a free slot of the person.
func (s *Service) DeclareAvailability(ctx context.Context, personID string, when models.TimeRange) (string, error) {
	if personID == "" {
		return "", invalid(errors.Error("person id is empty"))
	}

	when, err := models.NewTimeRange(when.Start, when.End)
	if err != nil {
		return "", invalid(err)
	}

	id, err := s.availability.Create(ctx, models.Availability{PersonID: personID, When: when})
	if err != nil {
		return "", persistence(errors.WrapFail(err, "create availability"))
	}

	return id, nil
}

// SaveProfile creates or replaces the person's directory entry.
func (s *Service) SaveProfile(ctx context.Context, person models.Person) error {
	err := s.validate.StructCtx(ctx, profile(person))
	if err != nil {
		return invalid(errors.WrapFail(err, "validate profile"))
	}

	if person.TimeZone != "" {
		_, err = time.LoadLocation(person.TimeZone)
		if err != nil {
			return invalid(errors.WrapFailf(err, "load time zone %s", person.TimeZone))
		}
	}

	return persistence(s.persons.Upsert(ctx, person))
}

type profile struct {
	ID        string `validate:"required"`
	FirstName string `validate:"required"`
	Email     string `validate:"required,email"`
	Company   string
	Job       string
	TimeZone  string
	Telegram  int64
}

func (s *Service) participantOf(ctx context.Context, actorID, interviewID string) (models.Interview, error) {
	interview, found, err := s.interviews.Get(ctx, interviewID)
	if err != nil {
		return models.Interview{}, persistence(errors.WrapFailf(err, "get interview %s", interviewID))
	}
	if !found {
		return models.Interview{}, errors.Mark(errors.Error("interview %s does not exist", interviewID), ErrNotFound)
	}

	if interview.Participant(actorID) == models.RoleNone {
		return models.Interview{}, errors.Mark(
			errors.Error("%s does not take part in %s", actorID, interviewID),
			ErrUnauthorized,
		)
	}

	return interview, nil
}
