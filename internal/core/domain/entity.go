package domain

// Entity names a kind of record whose changes screens can subscribe to.
type Entity string

const (
	EntityTask         Entity = "task"
	EntityNotification Entity = "notification"
)
