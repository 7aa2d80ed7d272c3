package pubsub

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
)

type (
	// EventType identifies the type of event
	EventType string

	// Event is a message relayed from a broker to its subscribers.
	Event[T any] struct {
		Type    EventType
		Payload T
	}
)
