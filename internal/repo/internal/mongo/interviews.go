package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
	mng "github.com/nikmy/interviewme/pkg/mongotools"
)

type mongoInterviews struct {
	coll  *mongo.Collection
	newID func() string
}

func (m mongoInterviews) Get(ctx context.Context, id string) (models.Interview, bool, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Interview{}, false, nil
	}

	if err != nil {
		return models.Interview{}, false, errors.WrapFail(err, "find interview by id")
	}

	var parsed models.Interview
	err = r.Decode(&parsed)
	if err != nil {
		return models.Interview{}, false, errors.WrapFail(err, "decode interview")
	}

	return parsed, true, nil
}

func (m mongoInterviews) GetInRange(ctx context.Context, min, max time.Time) ([]models.Interview, error) {
	return m.find(ctx, within(min, max))
}

func (m mongoInterviews) GetForPositionWithoutShadowInRange(
	ctx context.Context,
	position models.Job,
	min, max time.Time,
) ([]models.Interview, error) {
	return m.find(ctx, mng.And(
		within(min, max),
		mng.Field(mng.Path(models.InterviewFieldPosition, models.JobFieldCompany), position.Company),
		mng.Field(mng.Path(models.InterviewFieldPosition, models.JobFieldTitle), position.Title),
		mng.Field(models.InterviewFieldShadowID, ""),
	))
}

func (m mongoInterviews) GetForPerson(ctx context.Context, personID string) ([]models.Interview, error) {
	if personID == "" {
		return nil, nil
	}
	return m.find(ctx, participant(personID))
}

func (m mongoInterviews) GetScheduledInterviewsInRangeForUser(
	ctx context.Context,
	personID string,
	min, max time.Time,
) ([]models.Interview, error) {
	if personID == "" {
		return nil, nil
	}
	return m.find(ctx, mng.And(participant(personID), within(min, max)))
}

func (m mongoInterviews) Create(ctx context.Context, interview models.Interview) (string, error) {
	interview.ID = m.newID()

	_, err := m.coll.InsertOne(ctx, interview)
	if err != nil {
		return "", errors.WrapFail(err, "insert interview")
	}

	return interview.ID, nil
}

func (m mongoInterviews) Update(ctx context.Context, interview models.Interview) error {
	_, err := m.coll.ReplaceOne(ctx, mng.ID(interview.ID), interview, options.Replace().SetUpsert(true))
	return errors.WrapFailf(err, "replace interview %s", interview.ID)
}

func (m mongoInterviews) Delete(ctx context.Context, id string) error {
	_, err := m.coll.DeleteOne(ctx, mng.ID(id))
	return errors.WrapFailf(err, "delete interview %s", id)
}

func (m mongoInterviews) find(ctx context.Context, filter bson.M) ([]models.Interview, error) {
	c, err := m.coll.Find(ctx, filter, byStart(models.InterviewFieldID))
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews")
	}

	return mng.FilterFunc[models.Interview](ctx, c, nil)
}

func participant(personID string) bson.M {
	return bson.M{"$or": bson.A{
		mng.Field(models.InterviewFieldInterviewerID, personID),
		mng.Field(models.InterviewFieldIntervieweeID, personID),
		mng.Field(models.InterviewFieldShadowID, personID),
	}}
}
