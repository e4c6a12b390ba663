// Package memory keeps all entities in process memory. It backs tests and
// single-instance development runs and satisfies the same ports as the
// mongo backend.
package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/nikmy/interviewme/internal/repo/models"
)

func NewClient(newID func() string) *Client {
	if newID == nil {
		newID = uuid.NewString
	}

	return &Client{
		availability: newAvailability(newID),
		interviews:   newInterviews(newID),
		persons:      newPersons(),
	}
}

type Client struct {
	availability *availability
	interviews   *interviews
	persons      *persons
}

func (c *Client) Availability() models.AvailabilityRepo {
	return c.availability
}

func (c *Client) Interviews() models.InterviewsRepo {
	return c.interviews
}

func (c *Client) Persons() models.PersonsRepo {
	return c.persons
}

func (c *Client) Close(context.Context) error {
	return nil
}
