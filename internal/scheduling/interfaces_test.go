package scheduling

import (
	"github.com/nikmy/interviewme/internal/notify"
	"github.com/nikmy/interviewme/internal/repo/models"
)

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=scheduling

type notifier interface {
	notify.Notifier
}

type matcher interface {
	Matcher
}

type interviewsApi interface {
	models.InterviewsRepo
}
