package scheduling

import (
	"github.com/nikmy/interviewme/internal/matching"
	"github.com/nikmy/interviewme/pkg/errors"
)

var (
	ErrInvalidRequest         = errors.Error("invalid request")
	ErrNoAvailableInterviewer = matching.ErrNoAvailableInterviewer
	ErrPersistence            = errors.Error("persistence failure")
	ErrNotification           = errors.Error("notification failure")
	ErrUnauthorized           = errors.Error("not authorized")
	ErrNotFound               = errors.Error("not found")
	ErrConflict               = errors.Error("conflict")
)

func invalid(err error) error {
	return errors.Mark(err, ErrInvalidRequest)
}

func persistence(err error) error {
	return errors.Mark(err, ErrPersistence)
}
