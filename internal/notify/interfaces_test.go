package notify

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=notify

type kafkaWriter interface {
	messageWriter
}
