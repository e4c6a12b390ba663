package models

import (
	"context"
	"time"
)

type InterviewsRepo interface {
	// Get returns the interview with the given id, found is false if there is none.
	Get(ctx context.Context, id string) (interview Interview, found bool, err error)

	// GetInRange returns interviews lying inside [min, max] ordered by start time.
	GetInRange(ctx context.Context, min, max time.Time) ([]Interview, error)

	// GetForPositionWithoutShadowInRange is GetInRange restricted to the position
	// and to interviews nobody shadows yet.
	GetForPositionWithoutShadowInRange(ctx context.Context, position Job, min, max time.Time) ([]Interview, error)

	// GetForPerson returns all interviews the person takes part in as an interviewer,
	// an interviewee or a shadow, ordered by start time.
	GetForPerson(ctx context.Context, personID string) ([]Interview, error)

	// GetScheduledInterviewsInRangeForUser is GetForPerson restricted to [min, max].
	GetScheduledInterviewsInRangeForUser(ctx context.Context, personID string, min, max time.Time) ([]Interview, error)

	// Create stores the interview under a freshly generated id, ignoring interview.ID.
	Create(ctx context.Context, interview Interview) (id string, err error)

	// Update overwrites the interview stored under interview.ID.
	Update(ctx context.Context, interview Interview) error

	// Delete removes the interview, deleting an absent one is a no-op.
	Delete(ctx context.Context, id string) error
}

type Interview struct {
	ID            string    `json:"id"             bson:"_id"`
	When          TimeRange `json:"when"           bson:"when"`
	InterviewerID string    `json:"interviewer_id" bson:"interviewer_id"`
	IntervieweeID string    `json:"interviewee_id" bson:"interviewee_id"`
	MeetLink      string    `json:"meet_link"      bson:"meet_link,omitempty"`
	Position      Job       `json:"position"       bson:"position"`
	ShadowID      string    `json:"shadow_id"      bson:"shadow_id"`
}

const (
	InterviewFieldID            = "_id"
	InterviewFieldWhen          = "when"
	InterviewFieldInterviewerID = "interviewer_id"
	InterviewFieldIntervieweeID = "interviewee_id"
	InterviewFieldMeetLink      = "meet_link"
	InterviewFieldPosition      = "position"
	InterviewFieldShadowID      = "shadow_id"
)

// Job is the (company, title) pair an interviewer is requested for.
type Job struct {
	Company string `json:"company" bson:"company"`
	Title   string `json:"title"   bson:"title"`
}

const (
	JobFieldCompany = "company"
	JobFieldTitle   = "title"
)

func (j Job) IsZero() bool {
	return j.Company == "" && j.Title == ""
}

type Role int

const (
	RoleNone Role = iota
	RoleInterviewer
	RoleInterviewee
	RoleShadow
)

func (r Role) String() string {
	switch r {
	case RoleInterviewer:
		return "interviewer"
	case RoleInterviewee:
		return "interviewee"
	case RoleShadow:
		return "shadow"
	default:
		return "unknown"
	}
}

// Participant returns the role the person plays in the interview.
func (i Interview) Participant(personID string) Role {
	if personID == "" {
		return RoleNone
	}

	switch personID {
	case i.InterviewerID:
		return RoleInterviewer
	case i.IntervieweeID:
		return RoleInterviewee
	case i.ShadowID:
		return RoleShadow
	default:
		return RoleNone
	}
}

func (i Interview) HasShadow() bool {
	return i.ShadowID != ""
}
