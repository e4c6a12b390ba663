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

type mongoAvailability struct {
	coll  *mongo.Collection
	newID func() string
}

func (m mongoAvailability) Create(ctx context.Context, a models.Availability) (string, error) {
	if a.ID == "" {
		a.ID = m.newID()
	}

	_, err := m.coll.InsertOne(ctx, a)
	if err != nil {
		return "", errors.WrapFail(err, "insert availability")
	}

	return a.ID, nil
}

func (m mongoAvailability) GetInRangeForAll(ctx context.Context, min, max time.Time) ([]models.Availability, error) {
	return m.find(ctx, within(min, max))
}

func (m mongoAvailability) GetInRangeForUser(
	ctx context.Context,
	personID string,
	min, max time.Time,
) ([]models.Availability, error) {
	return m.find(ctx, mng.And(
		mng.Field(models.AvailabilityFieldPersonID, personID),
		within(min, max),
	))
}

func (m mongoAvailability) GetOverlappingForAll(ctx context.Context, when models.TimeRange) ([]models.Availability, error) {
	return m.find(ctx, overlapping(when))
}

func (m mongoAvailability) GetOverlappingForUser(
	ctx context.Context,
	personID string,
	when models.TimeRange,
) ([]models.Availability, error) {
	return m.find(ctx, mng.And(
		mng.Field(models.AvailabilityFieldPersonID, personID),
		overlapping(when),
	))
}

func overlapping(when models.TimeRange) bson.M {
	return mng.Overlapping(
		models.AvailabilityFieldWhen,
		models.TimeRangeFieldStart,
		models.TimeRangeFieldEnd,
		when.Start,
		when.End,
	)
}

func (m mongoAvailability) Update(ctx context.Context, a models.Availability) error {
	_, err := m.coll.ReplaceOne(ctx, mng.ID(a.ID), a, options.Replace().SetUpsert(true))
	return errors.WrapFailf(err, "replace availability %s", a.ID)
}

func (m mongoAvailability) SetScheduled(ctx context.Context, id string, from, to bool) (bool, error) {
	r, err := m.coll.UpdateOne(
		ctx,
		mng.And(mng.ID(id), mng.Field(models.AvailabilityFieldScheduled, from)),
		mng.SetAll(mng.Field(models.AvailabilityFieldScheduled, to)),
	)
	if err != nil {
		return false, errors.WrapFailf(err, "update availability %s", id)
	}

	return r.MatchedCount == 1, nil
}

func (m mongoAvailability) find(ctx context.Context, filter bson.M) ([]models.Availability, error) {
	c, err := m.coll.Find(ctx, filter, byStart(models.AvailabilityFieldPersonID, models.AvailabilityFieldID))
	if err != nil {
		return nil, errors.WrapFail(err, "find availability")
	}

	return mng.FilterFunc[models.Availability](ctx, c, nil)
}
