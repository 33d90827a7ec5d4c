package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged   EventType = "SelectionChanged"
	EventSelectionCleared   EventType = "SelectionCleared"
	EventCatalogLoaded      EventType = "CatalogLoaded"
	EventCatalogFailed      EventType = "CatalogFailed"
	EventStorageWriteFailed EventType = "StorageWriteFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after an entry is added to or removed from the den
type SelectionChangedEvent struct {
	Added   string
	Removed string
	Items   []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the den is emptied
type SelectionClearedEvent struct {
	Previous []string
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// CatalogLoadedEvent is emitted once the catalog fetch resolves with data
type CatalogLoadedEvent struct {
	Count int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogFailedEvent is emitted when the catalog fetch resolves with an error
type CatalogFailedEvent struct {
	Err error
}

func (e CatalogFailedEvent) Type() EventType { return EventCatalogFailed }

// StorageWriteFailedEvent is emitted when persisting the selection fails
type StorageWriteFailedEvent struct {
	Key string
	Err error
}

func (e StorageWriteFailedEvent) Type() EventType { return EventStorageWriteFailed }
