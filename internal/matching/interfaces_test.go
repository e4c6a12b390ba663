package matching

import (
	"github.com/nikmy/interviewme/internal/repo/models"
)

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=matching

type availabilityApi interface {
	models.AvailabilityRepo
}

type personsApi interface {
	models.PersonsRepo
}
