package model

// Entity is implemented by every persisted record type.
type Entity interface {
	EntityID() int
}
