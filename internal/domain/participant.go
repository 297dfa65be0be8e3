package domain

import (
	"context"
	"time"
)

// Participant represents a person who can register for events.
// Email is stored lower-cased and is globally unique.
// swagger:model Participant
type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewParticipant returns a new Participant with the given fields. ID is set by the repository on create.
func NewParticipant(name, email string, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ParticipantPatch holds the optional fields of a partial participant update.
// A nil field is left unchanged; at least one field must be present.
type ParticipantPatch struct {
	Name  *string
	Email *string
}

// Empty reports whether the patch carries no fields.
func (p ParticipantPatch) Empty() bool {
	return p.Name == nil && p.Email == nil
}

// ListParticipantsParams holds pagination and optional filters for
// participant listings. NameContains matches case-insensitively as a
// substring; Email matches exactly against the normalized stored value.
type ListParticipantsParams struct {
	Pagination   PaginationParams
	NameContains string
	Email        string
}

// ParticipantRepository defines the interface for participant storage.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *Participant) error
	GetByID(ctx context.Context, id string) (*Participant, error)
	// List returns one page of participants plus the total count of rows
	// matching the filters.
	List(ctx context.Context, params ListParticipantsParams) ([]*Participant, int, error)
	Update(ctx context.Context, id string, patch ParticipantPatch) (*Participant, error)
	Delete(ctx context.Context, id string) error
}

// ParticipantService defines the business logic for participant management.
type ParticipantService interface {
	Create(ctx context.Context, name, email string) (*Participant, error)
	List(ctx context.Context, params ListParticipantsParams) ([]*Participant, int, error)
	GetByID(ctx context.Context, id string) (*Participant, error)
	Update(ctx context.Context, id string, patch ParticipantPatch) (*Participant, error)
	Delete(ctx context.Context, id string) error
}
