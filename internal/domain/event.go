package domain

import (
	"context"
	"time"
)

// Event represents a bookable event with a fixed registration capacity.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description string, eventDate time.Time, capacity int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		EventDate:   eventDate,
		Capacity:    capacity,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventPatch holds the optional fields of a partial event update.
// A nil field is left unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	Capacity    *int
}

// Empty reports whether the patch carries no fields.
func (p EventPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.EventDate == nil && p.Capacity == nil
}

// ListEventsParams holds pagination and sorting for event listings.
// SortBy and SortOrder are validated by the service against a whitelist.
type ListEventsParams struct {
	Pagination PaginationParams
	SortBy     string
	SortOrder  string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns one page of events plus the total row count.
	List(ctx context.Context, params ListEventsParams) ([]*Event, int, error)
	// Update applies the non-nil patch fields, always bumping updated_at,
	// and returns the stored row.
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	// Delete removes the event; its registrations go with it via the
	// ON DELETE CASCADE constraint on event_participants.
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management.
type EventService interface {
	Create(ctx context.Context, title, description string, eventDate time.Time, capacity int) (*Event, error)
	List(ctx context.Context, params ListEventsParams) ([]*Event, int, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
}
