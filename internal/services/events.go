package services

// EventPublisher is the subset of the events client the services depend
// on. A nil publisher disables event publication.
type EventPublisher interface {
	Publish(event string, payload interface{}) error
}
