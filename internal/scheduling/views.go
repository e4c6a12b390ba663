package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
)

const (
	dayLayout  = "Monday, January 2, 2006"
	timeLayout = "3:04 PM"
)

// View is an interview as shown to one of its participants.
type View struct {
	ID          string           `json:"id"`
	When        models.TimeRange `json:"when"`
	Date        string           `json:"date"`
	Interviewer string           `json:"interviewer"`
	Interviewee string           `json:"interviewee"`
	Shadow      string           `json:"shadow,omitempty"`
	Role        string           `json:"role"`
	HasStarted  bool             `json:"hasStarted"`
}

// ListForPerson returns the person's interviews ordered by start time, with
// dates rendered in loc. An interview counts as started five minutes before
// its start.
func (s *Service) ListForPerson(
	ctx context.Context,
	personID string,
	loc *time.Location,
	now time.Time,
) ([]View, error) {
	if loc == nil {
		loc = time.UTC
	}

	interviews, err := s.interviews.GetForPerson(ctx, personID)
	if err != nil {
		return nil, persistence(errors.WrapFailf(err, "get interviews of %s", personID))
	}

	names := make(map[string]string)
	firstName := func(id string) (string, error) {
		if id == "" {
			return "", nil
		}
		if name, ok := names[id]; ok {
			return name, nil
		}

		c, err := s.recipient(ctx, id)
		if err != nil {
			return "", persistence(err)
		}

		names[id] = c.FirstName
		return c.FirstName, nil
	}

	views := make([]View, 0, len(interviews))
	for _, i := range interviews {
		v := View{
			ID:         i.ID,
			When:       i.When,
			Date:       dateString(i.When, loc),
			Role:       roleLabel(i.Participant(personID)),
			HasStarted: i.When.Start.Add(-startedLeeway).Before(now),
		}

		v.Interviewer, err = firstName(i.InterviewerID)
		if err != nil {
			return nil, err
		}

		v.Interviewee, err = firstName(i.IntervieweeID)
		if err != nil {
			return nil, err
		}

		v.Shadow, err = firstName(i.ShadowID)
		if err != nil {
			return nil, err
		}

		views = append(views, v)
	}

	return views, nil
}

func dateString(when models.TimeRange, loc *time.Location) string {
	start, end := when.Start.In(loc), when.End.In(loc)
	return fmt.Sprintf("%s from %s to %s",
		start.Format(dayLayout),
		start.Format(timeLayout),
		end.Format(timeLayout),
	)
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleInterviewer:
		return "Interviewer"
	case models.RoleInterviewee:
		return "Interviewee"
	case models.RoleShadow:
		return "Shadow"
	default:
		return "unknown"
	}
}
