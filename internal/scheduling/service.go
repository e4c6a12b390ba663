// Package scheduling books mock interviews: it matches an interviewer,
// stores the interview, marks both parties busy and notifies them.
package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nikmy/interviewme/internal/matching"
	"github.com/nikmy/interviewme/internal/notify"
	"github.com/nikmy/interviewme/internal/repo"
	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
	"github.com/nikmy/interviewme/pkg/logger"
)

const (
	SubjectInterviewer = "You have been requested to conduct a mock interview!"
	SubjectInterviewee = "You have been registered for a mock interview!"
	SubjectFeedback    = "Your Interviewer has submitted some feedback for your interview!"

	// UnknownName stands for a participant missing from the person directory.
	UnknownName = "Nonexistent User"

	emailDateLayout = "Monday, January 2, 2006 at 3:04 PM MST"
)

type Matcher interface {
	Match(ctx context.Context, q matching.Query) (models.Person, error)
	Rank(ctx context.Context, q matching.Query) ([]models.Person, error)
}

type Request struct {
	IntervieweeID    string    `validate:"required"`
	IntervieweeEmail string    `validate:"omitempty,email"`
	Company          string    `validate:"required"`
	Job              string    `validate:"required"`
	Start            time.Time `validate:"required"`
}

func New(
	log logger.Logger,
	cfg Config,
	client repo.Client,
	matcher Matcher,
	notifier notify.Notifier,
) *Service {
	return &Service{
		log:          log.With("scheduling"),
		cfg:          cfg,
		availability: client.Availability(),
		interviews:   client.Interviews(),
		persons:      client.Persons(),
		matcher:      matcher,
		notifier:     notifier,
		validate:     validator.New(),
	}
}

type Service struct {
	log logger.Logger
	cfg Config

	availability models.AvailabilityRepo
	interviews   models.InterviewsRepo
	persons      models.PersonsRepo

	matcher  Matcher
	notifier notify.Notifier
	validate *validator.Validate
}

// Schedule books an interview for the request. When only notification
// fails, the stored interview is returned together with ErrNotification.
func (s *Service) Schedule(ctx context.Context, req Request) (models.Interview, error) {
	err := s.validate.StructCtx(ctx, req)
	if err != nil {
		return models.Interview{}, invalid(errors.WrapFail(err, "validate scheduling request"))
	}

	when, err := models.Starting(req.Start, s.cfg.duration())
	if err != nil {
		return models.Interview{}, invalid(err)
	}

	q := matching.Query{
		When:    when,
		Company: req.Company,
		Job:     req.Job,
		Exclude: req.IntervieweeID,
	}

	interview := models.Interview{
		When:          when,
		IntervieweeID: req.IntervieweeID,
		Position:      models.Job{Company: req.Company, Title: req.Job},
	}

	var interviewer models.Person
	if s.cfg.ClaimSlots {
		interview, interviewer, err = s.claimAndCreate(ctx, q, interview)
	} else {
		interview, interviewer, err = s.matchAndCreate(ctx, q, interview)
	}
	if err != nil {
		// interview.ID is set when the failure came after it was stored
		return interview, err
	}

	s.log.Infof("scheduled interview %s: %s interviews %s at %s",
		interview.ID, interview.InterviewerID, interview.IntervieweeID, when.Start)

	err = s.notifyScheduled(ctx, interview, interviewer, req.IntervieweeEmail)
	if err != nil {
		return interview, errors.Mark(err, ErrNotification)
	}

	return interview, nil
}

func (s *Service) matchAndCreate(
	ctx context.Context,
	q matching.Query,
	interview models.Interview,
) (models.Interview, models.Person, error) {
	interviewer, err := s.matcher.Match(ctx, q)
	if errors.Is(err, matching.ErrNoAvailableInterviewer) {
		return models.Interview{}, models.Person{}, err
	}
	if err != nil {
		return models.Interview{}, models.Person{}, persistence(errors.WrapFail(err, "match interviewer"))
	}

	interview.InterviewerID = interviewer.ID
	interview.ID, err = s.interviews.Create(ctx, interview)
	if err != nil {
		return models.Interview{}, models.Person{}, persistence(errors.WrapFail(err, "create interview"))
	}

	err = s.reconcile(ctx, interview.When, interview.InterviewerID, interview.IntervieweeID)
	if err != nil {
		return interview, interviewer, persistence(errors.WrapFailf(err, "mark availability for %s", interview.ID))
	}

	return interview, interviewer, nil
}

func (s *Service) claimAndCreate(
	ctx context.Context,
	q matching.Query,
	interview models.Interview,
) (models.Interview, models.Person, error) {
	ranked, err := s.matcher.Rank(ctx, q)
	if errors.Is(err, matching.ErrNoAvailableInterviewer) {
		return models.Interview{}, models.Person{}, err
	}
	if err != nil {
		return models.Interview{}, models.Person{}, persistence(errors.WrapFail(err, "rank interviewers"))
	}

	for _, candidate := range ranked {
		claimed, ok, err := s.claim(ctx, candidate.ID, q.When)
		if err != nil {
			return models.Interview{}, models.Person{}, persistence(errors.WrapFailf(err, "claim availability of %s", candidate.ID))
		}
		if !ok {
			s.log.Debugf("lost availability of %s at %s, trying next", candidate.ID, q.When.Start)
			continue
		}

		interview.InterviewerID = candidate.ID
		interview.ID, err = s.interviews.Create(ctx, interview)
		if err != nil {
			s.release(ctx, claimed)
			return models.Interview{}, models.Person{}, persistence(errors.WrapFail(err, "create interview"))
		}

		err = s.reconcile(ctx, interview.When, interview.IntervieweeID)
		if err != nil {
			return interview, candidate, persistence(errors.WrapFailf(err, "mark availability for %s", interview.ID))
		}

		return interview, candidate, nil
	}

	return models.Interview{}, models.Person{}, matching.ErrNoAvailableInterviewer
}

// claim flips every free slot of the person overlapping when to scheduled.
// It fails if another request got any of them first or if the claimed slots
// do not cover when, giving back the ones taken here.
func (s *Service) claim(ctx context.Context, personID string, when models.TimeRange) ([]string, bool, error) {
	slots, err := s.availability.GetOverlappingForUser(ctx, personID, when)
	if err != nil {
		return nil, false, err
	}

	var (
		claimed []string
		covered []models.TimeRange
	)
	for _, slot := range slots {
		if slot.Scheduled {
			continue
		}

		ok, err := s.availability.SetScheduled(ctx, slot.ID, false, true)
		if err != nil {
			s.release(ctx, claimed)
			return nil, false, err
		}
		if !ok {
			s.release(ctx, claimed)
			return nil, false, nil
		}

		claimed = append(claimed, slot.ID)
		covered = append(covered, slot.When)
	}

	if !models.Covered(when, covered) {
		s.release(ctx, claimed)
		return nil, false, nil
	}

	return claimed, true, nil
}

func (s *Service) release(ctx context.Context, slotIDs []string) {
	for _, id := range slotIDs {
		_, err := s.availability.SetScheduled(ctx, id, true, false)
		if err != nil {
			s.log.Error(errors.WrapFailf(err, "release availability %s", id))
		}
	}
}

// reconcile marks every slot of the persons overlapping when as scheduled.
func (s *Service) reconcile(ctx context.Context, when models.TimeRange, personIDs ...string) error {
	return s.setScheduled(ctx, when, false, true, personIDs...)
}

func (s *Service) setScheduled(ctx context.Context, when models.TimeRange, from, to bool, personIDs ...string) error {
	for _, personID := range personIDs {
		slots, err := s.availability.GetOverlappingForUser(ctx, personID, when)
		if err != nil {
			return errors.WrapFailf(err, "get availability of %s", personID)
		}

		for _, slot := range slots {
			if slot.Scheduled == to {
				continue
			}

			ok, err := s.availability.SetScheduled(ctx, slot.ID, from, to)
			if err != nil {
				return errors.WrapFailf(err, "update availability %s", slot.ID)
			}
			if !ok {
				s.log.Warnf("availability %s of %s changed concurrently", slot.ID, personID)
			}
		}
	}

	return nil
}

func (s *Service) notifyScheduled(
	ctx context.Context,
	interview models.Interview,
	interviewer models.Person,
	intervieweeEmail string,
) error {
	interviewee, err := s.recipient(ctx, interview.IntervieweeID)
	if err != nil {
		return err
	}
	if interviewee.Email == "" {
		interviewee.Email = intervieweeEmail
	}

	toInterviewer := notify.RecipientOf(interviewer)
	names := map[string]string{
		"interviewer_first_name": toInterviewer.FirstName,
		"interviewee_first_name": interviewee.FirstName,
	}

	var (
		wg             sync.WaitGroup
		errInterviewer error
		errInterviewee error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errInterviewer = s.notifier.Send(ctx, toInterviewer, SubjectInterviewer, notify.TemplateNewInterviewInterviewer,
			with(names, map[string]string{
				"formatted_date": interview.When.Start.In(interviewer.Location()).Format(emailDateLayout),
				"form_link":      notify.FeedbackLink(s.cfg.BaseURL, interview.ID, models.RoleInterviewer),
			}),
		)
	}()

	go func() {
		defer wg.Done()
		errInterviewee = s.notifier.Send(ctx, interviewee.Recipient, SubjectInterviewee, notify.TemplateNewInterviewInterviewee,
			with(names, map[string]string{
				"formatted_date": interview.When.Start.In(interviewee.location).Format(emailDateLayout),
				"form_link":      notify.FeedbackLink(s.cfg.BaseURL, interview.ID, models.RoleInterviewee),
			}),
		)
	}()

	wg.Wait()

	return errors.Join(
		errors.WrapFail(errInterviewer, "notify interviewer"),
		errors.WrapFail(errInterviewee, "notify interviewee"),
	)
}

type contact struct {
	notify.Recipient
	location *time.Location
}

// recipient resolves the person for messaging. Persons missing from the
// directory get a placeholder name and UTC dates.
func (s *Service) recipient(ctx context.Context, personID string) (contact, error) {
	p, found, err := s.persons.Get(ctx, personID)
	if err != nil {
		return contact{}, errors.WrapFailf(err, "get person %s", personID)
	}

	if !found {
		return contact{
			Recipient: notify.Recipient{ID: personID, FirstName: UnknownName},
			location:  time.UTC,
		}, nil
	}

	return contact{Recipient: notify.RecipientOf(p), location: p.Location()}, nil
}

func with(base map[string]string, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
