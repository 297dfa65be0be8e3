package services

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"eventregistry/internal/domain"
)

// nameRegex allows letters (any script), spaces, apostrophes, and hyphens.
var nameRegex = regexp.MustCompile(`^[\p{L}\s'-]+$`)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	minNameLength  = 2
	maxNameLength  = 100
	maxEmailLength = 255
)

type participantService struct {
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

// NewParticipantService creates a ParticipantService with the given repository.
func NewParticipantService(participantRepo domain.ParticipantRepository, timeout time.Duration) domain.ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

func (s *participantService) Create(ctx context.Context, name, email string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	var fields []string
	fields = appendNameErrors(fields, name)
	fields = appendEmailErrors(fields, email)
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	now := time.Now().UTC()
	participant := domain.NewParticipant(name, email, now, now)
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *participantService) List(ctx context.Context, params domain.ListParticipantsParams) ([]*domain.Participant, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// The email filter matches the stored, normalized value exactly.
	if params.Email != "" {
		params.Email = normalizeEmail(params.Email)
	}
	return s.participantRepo.List(ctx, params)
}

func (s *participantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.participantRepo.GetByID(ctx, id)
}

// Update requires at least one of name or email to be present.
func (s *participantService) Update(ctx context.Context, id string, patch domain.ParticipantPatch) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if patch.Empty() {
		return nil, domain.NewValidationError("at least one of name or email is required")
	}

	var fields []string
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		fields = appendNameErrors(fields, trimmed)
		patch.Name = &trimmed
	}
	if patch.Email != nil {
		normalized := normalizeEmail(*patch.Email)
		fields = appendEmailErrors(fields, normalized)
		patch.Email = &normalized
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	return s.participantRepo.Update(ctx, id, patch)
}

func (s *participantService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.participantRepo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func appendNameErrors(fields []string, name string) []string {
	if name == "" {
		return append(fields, "name is required")
	}
	// Length limits count characters, not bytes, so multibyte scripts
	// get the full 100-character allowance.
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		fields = append(fields, "name must be between 2 and 100 characters")
	}
	if !nameRegex.MatchString(name) {
		fields = append(fields, "name contains invalid characters")
	}
	return fields
}

func appendEmailErrors(fields []string, email string) []string {
	if email == "" {
		return append(fields, "email is required")
	}
	if len(email) > maxEmailLength {
		fields = append(fields, "email must be less than 255 characters")
	}
	if !emailRegex.MatchString(email) {
		fields = append(fields, "please provide a valid email address")
	}
	return fields
}
