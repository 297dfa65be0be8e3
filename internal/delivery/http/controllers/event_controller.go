package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	DevMode bool
}

func NewEventController(logger *slog.Logger, svc domain.EventService, devMode bool) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		DevMode: devMode,
	}
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Capacity    int       `json:"capacity"`
}

// Validate implements helpers.Validator. Format-level rules only; the
// service rechecks state-dependent rules such as date futurity.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, "description is required")
	}
	if c.EventDate.IsZero() {
		errs = append(errs, "event_date is required")
	}
	if c.Capacity < 1 {
		errs = append(errs, "capacity must be a positive integer")
	}
	return errs
}

// EventSuccessResponse is the success response envelope for single-event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a new event. The event date must be strictly in the future and capacity must be positive. id and timestamps are server-generated.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req.Title, req.Description, req.EventDate, req.Capacity)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Returns a page of events. Default sort is createdAt descending; limit is capped at 100.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Param sortBy query string false "Sort field: title, eventDate, createdAt, capacity"
// @Param sortOrder query string false "Sort order: asc or desc"
// @Success 200 {object} helpers.PaginatedResponse "data contains the events, pagination the metadata"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := domain.ListEventsParams{
		Pagination: helpers.ParsePagination(r),
		SortBy:     r.URL.Query().Get("sortBy"),
		SortOrder:  strings.ToLower(r.URL.Query().Get("sortOrder")),
	}
	events, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	meta := helpers.NewPaginationMeta(params.Pagination.Page, params.Pagination.Limit, total)
	helpers.WriteJSONPage(w, events, meta)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetByID(r.Context(), eventID)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}.
// Absent fields are left unchanged; an empty body only bumps updated_at.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	Capacity    *int       `json:"capacity"`
}

// Validate implements helpers.Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		errs = append(errs, "description cannot be empty")
	}
	if u.Capacity != nil && *u.Capacity < 1 {
		errs = append(errs, "capacity must be a positive integer")
	}
	return errs
}

// UpdateEvent godoc
// @Summary Partially update an event
// @Description Merges the supplied fields only. event_date futurity and capacity positivity are re-validated for the fields actually supplied.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param event body UpdateEventRequest true "Fields to update"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Capacity:    req.Capacity,
	}
	event, err := c.Service.Update(r.Context(), eventID, patch)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event; all of its registrations are removed by the storage-level cascade.
// @Tags events
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "No content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), eventID); err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
