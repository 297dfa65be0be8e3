package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"
)

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
	DevMode bool
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService, devMode bool) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
		DevMode: devMode,
	}
}

// CreateParticipantRequest is the request body for POST /participants.
type CreateParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate implements helpers.Validator. Character-set and length rules are
// enforced by the service, which owns normalization.
func (c CreateParticipantRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// ParticipantSuccessResponse is the success response envelope for single-participant endpoints.
type ParticipantSuccessResponse struct {
	Data  *domain.Participant `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// CreateParticipant godoc
// @Summary Create a new participant
// @Description Creates a participant. The email is lower-cased before storage and must be globally unique.
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body CreateParticipantRequest true "Participant data"
// @Success 201 {object} controllers.ParticipantSuccessResponse "data contains the created participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [post]
func (c *ParticipantController) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req CreateParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	participant, err := c.Service.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// ListParticipants godoc
// @Summary List participants
// @Description Returns a page of participants. Optional filters: name (case-insensitive substring) and email (exact match).
// @Tags participants
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Param name query string false "Filter by name substring (case-insensitive)"
// @Param email query string false "Filter by exact email"
// @Success 200 {object} helpers.PaginatedResponse "data contains the participants, pagination the metadata"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [get]
func (c *ParticipantController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	params := domain.ListParticipantsParams{
		Pagination:   helpers.ParsePagination(r),
		NameContains: r.URL.Query().Get("name"),
		Email:        r.URL.Query().Get("email"),
	}
	participants, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	meta := helpers.NewPaginationMeta(params.Pagination.Page, params.Pagination.Limit, total)
	helpers.WriteJSONPage(w, participants, meta)
}

// GetParticipant godoc
// @Summary Get a participant by ID
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Success 200 {object} controllers.ParticipantSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [get]
func (c *ParticipantController) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}
	participant, err := c.Service.GetByID(r.Context(), participantID)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// UpdateParticipantRequest is the request body for PATCH /participants/{participantID}.
// At least one field must be present.
type UpdateParticipantRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Validate implements helpers.Validator.
func (u UpdateParticipantRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if u.Email != nil && strings.TrimSpace(*u.Email) == "" {
		errs = append(errs, "email cannot be empty")
	}
	return errs
}

// UpdateParticipant godoc
// @Summary Partially update a participant
// @Description Updates name and/or email. Requires at least one field. An email change is re-checked for uniqueness.
// @Tags participants
// @Accept json
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Param participant body UpdateParticipantRequest true "Fields to update"
// @Success 200 {object} controllers.ParticipantSuccessResponse "data contains the updated participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [patch]
func (c *ParticipantController) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}
	var req UpdateParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.ParticipantPatch{
		Name:  req.Name,
		Email: req.Email,
	}
	participant, err := c.Service.Update(r.Context(), participantID, patch)
	if err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// DeleteParticipant godoc
// @Summary Delete a participant
// @Description Removes the participant; all of their registrations are removed by the storage-level cascade.
// @Tags participants
// @Param participantID path string true "Participant ID (UUID)"
// @Success 204 "No content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID} [delete]
func (c *ParticipantController) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), participantID); err != nil {
		respondError(c.Logger, c.DevMode, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
