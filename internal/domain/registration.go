package domain

import (
	"context"
	"time"
)

// Registration links one event and one participant. The (event, participant)
// pair is unique; a registration has no identity beyond it.
// swagger:model Registration
type Registration struct {
	EventID       string    `json:"event_id"`
	ParticipantID string    `json:"participant_id"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// RegisteredParticipant bundles a participant with the time they registered.
type RegisteredParticipant struct {
	Participant  *Participant `json:"participant"`
	RegisteredAt time.Time    `json:"registered_at"`
}

// RegisteredEvent bundles an event with the time the participant registered.
type RegisteredEvent struct {
	Event        *Event    `json:"event"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventParticipantsPage is one page of an event's participants together with
// the event's remaining capacity at query time.
type EventParticipantsPage struct {
	Participants      []*RegisteredParticipant
	Total             int
	RemainingCapacity int
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Register performs the capacity-checked insert as a single
	// transaction: the event row is locked, the participant's existence,
	// the registration count, and the duplicate pair are all checked
	// against the same snapshot before the insert. Returns
	// ErrEventNotFound, ErrParticipantNotFound, ErrEventFull, or
	// ErrAlreadyRegistered for the respective failed check.
	Register(ctx context.Context, eventID, participantID string) (*Registration, error)
	// Remove deletes the registration; ErrRegistrationNotFound if absent.
	Remove(ctx context.Context, eventID, participantID string) error
	// ListByEventID returns one page of the event's participants ordered
	// by registration time descending, plus the total registration count.
	ListByEventID(ctx context.Context, eventID string, p PaginationParams) ([]*RegisteredParticipant, int, error)
	// ListByParticipantID returns one page of the participant's events
	// ordered by registration time descending, plus the total count.
	ListByParticipantID(ctx context.Context, participantID string, p PaginationParams) ([]*RegisteredEvent, int, error)
}

// RegistrationService defines the registration workflow.
type RegistrationService interface {
	Register(ctx context.Context, eventID, participantID string) (*Registration, error)
	Remove(ctx context.Context, eventID, participantID string) error
	ListEventParticipants(ctx context.Context, eventID string, p PaginationParams) (*EventParticipantsPage, error)
	ListParticipantEvents(ctx context.Context, participantID string, p PaginationParams) ([]*RegisteredEvent, int, error)
}
