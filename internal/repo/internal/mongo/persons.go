package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
	mng "github.com/nikmy/interviewme/pkg/mongotools"
)

type mongoPersons struct {
	coll *mongo.Collection
}

func (m mongoPersons) Get(ctx context.Context, id string) (models.Person, bool, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Person{}, false, nil
	}

	if err != nil {
		return models.Person{}, false, errors.WrapFail(err, "find person by id")
	}

	var parsed models.Person
	err = r.Decode(&parsed)
	if err != nil {
		return models.Person{}, false, errors.WrapFail(err, "decode person")
	}

	return parsed, true, nil
}

func (m mongoPersons) Upsert(ctx context.Context, person models.Person) error {
	if person.ID == "" {
		return errors.Error("person id is empty")
	}

	_, err := m.coll.ReplaceOne(ctx, mng.ID(person.ID), person, options.Replace().SetUpsert(true))
	return errors.WrapFailf(err, "upsert person %s", person.ID)
}
