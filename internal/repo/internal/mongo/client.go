package mongo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
	mng "github.com/nikmy/interviewme/pkg/mongotools"
)

type Collections struct {
	Availability string
	Interviews   string
	Persons      string
}

func NewClient(
	ctx context.Context,
	opts *options.ClientOptions,
	database string,
	collections Collections,
) (*Client, error) {
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.WrapFail(err, "ping mongo db")
	}

	db := client.Database(database, options.Database())
	c := &Client{
		c:            client,
		availability: mongoAvailability{coll: db.Collection(collections.Availability), newID: uuid.NewString},
		interviews:   mongoInterviews{coll: db.Collection(collections.Interviews), newID: uuid.NewString},
		persons:      mongoPersons{coll: db.Collection(collections.Persons)},
	}

	err = c.ensureIndexes(ctx)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return c, nil
}

type Client struct {
	c            *mongo.Client
	availability mongoAvailability
	interviews   mongoInterviews
	persons      mongoPersons
}

func (m *Client) Availability() models.AvailabilityRepo {
	return m.availability
}

func (m *Client) Interviews() models.InterviewsRepo {
	return m.interviews
}

func (m *Client) Persons() models.PersonsRepo {
	return m.persons
}

func (m *Client) Close(ctx context.Context) error {
	return errors.WrapFail(m.c.Disconnect(ctx), "disconnect from mongo db")
}

func (m *Client) ensureIndexes(ctx context.Context) error {
	whenStart := mng.Path(models.AvailabilityFieldWhen, models.TimeRangeFieldStart)

	_, err := m.availability.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: whenStart, Value: 1}}},
		{Keys: bson.D{{Key: models.AvailabilityFieldPersonID, Value: 1}, {Key: whenStart, Value: 1}}},
	})
	if err != nil {
		return errors.WrapFail(err, "create availability indexes")
	}

	_, err = m.interviews.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: whenStart, Value: 1}}},
		{Keys: bson.D{{Key: models.InterviewFieldInterviewerID, Value: 1}}},
		{Keys: bson.D{{Key: models.InterviewFieldIntervieweeID, Value: 1}}},
		{Keys: bson.D{{Key: models.InterviewFieldShadowID, Value: 1}}},
	})
	return errors.WrapFail(err, "create interviews indexes")
}

func byStart(tieBreakers ...string) *options.FindOptions {
	sort := bson.D{{Key: mng.Path(models.InterviewFieldWhen, models.TimeRangeFieldStart), Value: 1}}
	for _, field := range tieBreakers {
		sort = append(sort, bson.E{Key: field, Value: 1})
	}
	return options.Find().SetSort(sort)
}

func within(min, max any) bson.M {
	return mng.Within(models.InterviewFieldWhen, models.TimeRangeFieldStart, models.TimeRangeFieldEnd, min, max)
}
