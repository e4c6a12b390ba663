package mongotools

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/interviewme/pkg/errors"
)

func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": s}
}

func ID(id string) bson.M {
	return bson.M{"_id": id}
}

func Field[T any](field string, value T) bson.M {
	return bson.M{field: value}
}

func Path(fields ...string) string {
	return strings.Join(fields, ".")
}

// Within matches documents whose [start, end] sub-document lies inside [from, to].
func Within(rangeField, startField, endField string, from, to any) bson.M {
	return bson.M{
		Path(rangeField, startField): bson.M{"$gte": from},
		Path(rangeField, endField):   bson.M{"$lte": to},
	}
}

// Overlapping matches documents whose range shares at least one instant with (from, to).
func Overlapping(rangeField, startField, endField string, from, to any) bson.M {
	return bson.M{
		Path(rangeField, startField): bson.M{"$lt": to},
		Path(rangeField, endField):   bson.M{"$gt": from},
	}
}

func And(filters ...bson.M) bson.M {
	merged := make(bson.M)
	for _, f := range filters {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	var filtered []T
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}
