package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventregistry/internal/domain"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	participantRepo  domain.ParticipantRepository
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	logger           *slog.Logger
	contextTimeout   time.Duration
}

// NewRegistrationService creates a RegistrationService with the given
// repositories. emailService may be backed by a noop mailer.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	participantRepo domain.ParticipantRepository,
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		participantRepo:  participantRepo,
		registrationRepo: registrationRepo,
		emailService:     emailService,
		logger:           logger,
		contextTimeout:   timeout,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID, participantID string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// All existence, capacity, and duplicate checks happen inside the
	// repository transaction; they must see one consistent snapshot.
	reg, err := s.registrationRepo.Register(ctx, eventID, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) ||
			errors.Is(err, domain.ErrParticipantNotFound) ||
			errors.Is(err, domain.ErrEventFull) ||
			errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, err
		}
		return nil, fmt.Errorf("register participant: %w", err)
	}

	s.sendConfirmation(ctx, reg)
	return reg, nil
}

// sendConfirmation emails the participant after a successful registration.
// Best effort: the registration is already committed, so failures are
// logged and never surfaced to the caller.
func (s *registrationService) sendConfirmation(ctx context.Context, reg *domain.Registration) {
	participant, err := s.participantRepo.GetByID(ctx, reg.ParticipantID)
	if err != nil {
		s.logger.WarnContext(ctx, "skipping confirmation email", "participant_id", reg.ParticipantID, "err", err)
		return
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "skipping confirmation email", "event_id", reg.EventID, "err", err)
		return
	}
	data := &domain.RegistrationConfirmationData{
		Email:           participant.Email,
		ParticipantName: participant.Name,
		EventTitle:      event.Title,
		EventDate:       event.EventDate.Format(time.RFC1123),
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "email", participant.Email, "err", err)
	}
}

func (s *registrationService) Remove(ctx context.Context, eventID, participantID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.registrationRepo.Remove(ctx, eventID, participantID)
}

func (s *registrationService) ListEventParticipants(ctx context.Context, eventID string, p domain.PaginationParams) (*domain.EventParticipantsPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	participants, total, err := s.registrationRepo.ListByEventID(ctx, eventID, p)
	if err != nil {
		return nil, fmt.Errorf("list event participants: %w", err)
	}

	remaining := event.Capacity - total
	if remaining < 0 {
		remaining = 0
	}
	return &domain.EventParticipantsPage{
		Participants:      participants,
		Total:             total,
		RemainingCapacity: remaining,
	}, nil
}

func (s *registrationService) ListParticipantEvents(ctx context.Context, participantID string, p domain.PaginationParams) ([]*domain.RegisteredEvent, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.participantRepo.GetByID(ctx, participantID); err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, 0, domain.ErrParticipantNotFound
		}
		return nil, 0, fmt.Errorf("get participant: %w", err)
	}

	events, total, err := s.registrationRepo.ListByParticipantID(ctx, participantID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list participant events: %w", err)
	}
	return events, total, nil
}
