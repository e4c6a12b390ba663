package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewme/internal/repo/internal/memory"
	"github.com/nikmy/interviewme/internal/repo/internal/mongo"
	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/pkg/errors"
	"github.com/nikmy/interviewme/pkg/logger"
)

type Client interface {
	Availability() models.AvailabilityRepo
	Interviews() models.InterviewsRepo
	Persons() models.PersonsRepo

	Close(ctx context.Context) error
}

const (
	defaultDatabase               = "interviewme"
	defaultAvailabilityCollection = "availability"
	defaultInterviewsCollection   = "scheduled_interviews"
	defaultPersonsCollection      = "persons"
)

func New(ctx context.Context, log logger.Logger, cfg Config) (Client, error) {
	switch cfg.Backend {
	case BackendMemory:
		log.Warnf("using in-memory storage, data will be lost on restart")
		return NewMemory(nil), nil
	case BackendMongo:
		return newMongo(ctx, log, cfg.Mongo)
	default:
		return nil, errors.Error("unknown storage backend %q", cfg.Backend)
	}
}

// NewMemory returns a process-local client. newID generates entity ids,
// nil means random UUIDs.
func NewMemory(newID func() string) Client {
	return memory.NewClient(newID)
}

func newMongo(ctx context.Context, log logger.Logger, cfg MongoConfig) (Client, error) {
	if cfg.URL == "" {
		return nil, errors.Error("mongo url is not set")
	}

	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	database := orDefault(cfg.Database, defaultDatabase)
	client, err := mongo.NewClient(ctx, opts, database, mongo.Collections{
		Availability: orDefault(cfg.Collections.Availability, defaultAvailabilityCollection),
		Interviews:   orDefault(cfg.Collections.Interviews, defaultInterviewsCollection),
		Persons:      orDefault(cfg.Collections.Persons, defaultPersonsCollection),
	})
	if err != nil {
		return nil, err
	}

	log.Infof("connected to mongo db %s", database)
	return client, nil
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
