package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"eventregistry/internal/domain"
)

const maxTitleLength = 255

// eventSortFields are the fields callers may sort event listings by.
var eventSortFields = map[string]struct{}{
	"title":     {},
	"eventDate": {},
	"createdAt": {},
	"capacity":  {},
}

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService with the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, title, description string, eventDate time.Time, capacity int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var fields []string
	fields = appendTitleErrors(fields, title)
	if strings.TrimSpace(description) == "" {
		fields = append(fields, "description is required")
	}
	fields = appendEventDateErrors(fields, eventDate)
	fields = appendCapacityErrors(fields, capacity)
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	now := time.Now().UTC()
	event := domain.NewEvent(strings.TrimSpace(title), description, eventDate, capacity, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, params domain.ListEventsParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var fields []string
	if params.SortBy == "" {
		params.SortBy = "createdAt"
	} else if _, ok := eventSortFields[params.SortBy]; !ok {
		fields = append(fields, "sortBy must be one of title, eventDate, createdAt, capacity")
	}
	switch params.SortOrder {
	case "":
		params.SortOrder = "desc"
	case "asc", "desc":
	default:
		fields = append(fields, `sortOrder must be either "asc" or "desc"`)
	}
	if len(fields) > 0 {
		return nil, 0, domain.NewValidationError(fields...)
	}

	return s.eventRepo.List(ctx, params)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.GetByID(ctx, id)
}

// Update merges the supplied fields only. An empty patch is allowed and
// bumps updated_at without touching anything else.
func (s *eventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var fields []string
	if patch.Title != nil {
		fields = appendTitleErrors(fields, *patch.Title)
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		fields = append(fields, "description cannot be empty")
	}
	if patch.EventDate != nil {
		fields = appendEventDateErrors(fields, *patch.EventDate)
	}
	if patch.Capacity != nil {
		fields = appendCapacityErrors(fields, *patch.Capacity)
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	return s.eventRepo.Update(ctx, id, patch)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.Delete(ctx, id)
}

func appendTitleErrors(fields []string, title string) []string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		fields = append(fields, "title is required")
	} else if utf8.RuneCountInString(trimmed) > maxTitleLength {
		fields = append(fields, "title cannot be longer than 255 characters")
	}
	return fields
}

func appendEventDateErrors(fields []string, eventDate time.Time) []string {
	if eventDate.IsZero() {
		return append(fields, "event date is required")
	}
	if !eventDate.After(time.Now()) {
		return append(fields, "event date must be in the future")
	}
	return fields
}

func appendCapacityErrors(fields []string, capacity int) []string {
	if capacity < 1 {
		return append(fields, "capacity must be a positive integer")
	}
	return fields
}
