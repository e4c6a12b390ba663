package models

import (
	"context"
	"time"
)

type PersonsRepo interface {
	// Get returns the person with the given id, found is false if there is none.
	Get(ctx context.Context, id string) (person Person, found bool, err error)

	Upsert(ctx context.Context, person Person) error
}

type Person struct {
	ID        string `json:"id"         bson:"_id"`
	FirstName string `json:"first_name" bson:"first_name"`
	Email     string `json:"email"      bson:"email"`
	Company   string `json:"company"    bson:"company"`
	Job       string `json:"job"        bson:"job"`

	// TimeZone is an IANA zone name used to display dates to the person.
	TimeZone string `json:"time_zone" bson:"time_zone,omitempty"`

	// Telegram is a chat id for the telegram notification channel.
	Telegram int64 `json:"telegram" bson:"telegram,omitempty"`
}

const (
	PersonFieldID        = "_id"
	PersonFieldFirstName = "first_name"
	PersonFieldEmail     = "email"
	PersonFieldCompany   = "company"
	PersonFieldJob       = "job"
	PersonFieldTimeZone  = "time_zone"
	PersonFieldTelegram  = "telegram"
)

func (p Person) Location() *time.Location {
	if p.TimeZone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (p Person) Holds(position Job) bool {
	return p.Company == position.Company && p.Job == position.Title
}
