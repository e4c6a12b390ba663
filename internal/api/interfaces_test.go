package api

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=api

type scheduler interface {
	Scheduler
}
