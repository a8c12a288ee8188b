package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemPicked         EventType = "ItemPicked"
	EventItemRemoved        EventType = "ItemRemoved"
	EventCandidatesReloaded EventType = "CandidatesReloaded"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemPickedEvent is emitted when a label is appended to the selection
type ItemPickedEvent struct {
	Label     string
	Selection []string // selection after the pick
}

func (e ItemPickedEvent) Type() EventType { return EventItemPicked }

// ItemRemovedEvent is emitted when a chip is removed from the selection
type ItemRemovedEvent struct {
	Label     string
	Selection []string // selection after the removal
}

func (e ItemRemovedEvent) Type() EventType { return EventItemRemoved }

// CandidatesReloadedEvent is emitted when the candidate file changed on disk
type CandidatesReloadedEvent struct {
	Source string
	Count  int
}

func (e CandidatesReloadedEvent) Type() EventType { return EventCandidatesReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	Candidates int
	Match      string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
