package controllers

import (
	"log/slog"
	"net/http"

	"eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
	DevMode bool
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService, devMode bool) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
		DevMode: devMode,
	}
}

// RegistrationSuccessResponse is the success response envelope for POST /events/{eventID}/participants/{participantID}.
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Register godoc
// @Summary Register a participant for an event
// @Description Registers the participant if the event has remaining capacity and the pair is not already registered. The capacity check and the insert run in one database transaction, so concurrent attempts cannot overbook.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param participantID path string true "Participant ID (UUID)"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or participant)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered) or capacity_exceeded"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants/{participantID} [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}
	reg, err := c.Service.Register(r.Context(), eventID, participantID)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// Remove godoc
// @Summary Remove a participant's registration
// @Tags registrations
// @Param eventID path string true "Event ID (UUID)"
// @Param participantID path string true "Participant ID (UUID)"
// @Success 204 "No content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (registration)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants/{participantID} [delete]
func (c *RegistrationController) Remove(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}
	if err := c.Service.Remove(r.Context(), eventID, participantID); err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListEventParticipants godoc
// @Summary List an event's participants
// @Description Returns the event's participants ordered by registration time descending. Pagination metadata includes the event's remaining capacity.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} helpers.PaginatedResponse "pagination includes remaining_capacity"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [get]
func (c *RegistrationController) ListEventParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	pagination := helpers.ParsePagination(r)
	page, err := c.Service.ListEventParticipants(r.Context(), eventID, pagination)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	meta := helpers.EventParticipantsMeta{
		PaginationMeta:    helpers.NewPaginationMeta(pagination.Page, pagination.Limit, page.Total),
		RemainingCapacity: page.RemainingCapacity,
	}
	helpers.WriteJSONPage(w, page.Participants, meta)
}

// ListParticipantEvents godoc
// @Summary List a participant's events
// @Description Returns the events the participant is registered for, ordered by registration time descending.
// @Tags registrations
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} helpers.PaginatedResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (participant)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID}/events [get]
func (c *RegistrationController) ListParticipantEvents(w http.ResponseWriter, r *http.Request) {
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}
	pagination := helpers.ParsePagination(r)
	events, total, err := c.Service.ListParticipantEvents(r.Context(), participantID, pagination)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	meta := helpers.NewPaginationMeta(pagination.Page, pagination.Limit, total)
	helpers.WriteJSONPage(w, events, meta)
}
