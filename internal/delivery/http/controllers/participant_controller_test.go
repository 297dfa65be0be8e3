package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeParticipantService implements domain.ParticipantService for handler tests.
type fakeParticipantService struct {
	createErr    error
	createResult *domain.Participant
	listErr      error
	listResult   []*domain.Participant
	listTotal    int
	getErr       error
	getResult    *domain.Participant
	updateErr    error
	updateResult *domain.Participant
	deleteErr    error

	lastListParams domain.ListParticipantsParams
}

func (f *fakeParticipantService) Create(ctx context.Context, name, email string) (*domain.Participant, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeParticipantService) List(ctx context.Context, params domain.ListParticipantsParams) ([]*domain.Participant, int, error) {
	f.lastListParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}

func (f *fakeParticipantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeParticipantService) Update(ctx context.Context, id string, patch domain.ParticipantPatch) (*domain.Participant, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeParticipantService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func TestParticipantController_CreateParticipant(t *testing.T) {
	created := &domain.Participant{ID: testParticipantID, Name: "Ada Lovelace", Email: "ada@example.com"}

	tests := []struct {
		name        string
		body        string
		svc         *fakeParticipantService
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "created",
			body:       `{"name":"Ada Lovelace","email":"ada@example.com"}`,
			svc:        &fakeParticipantService{createResult: created},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing fields",
			body:        `{}`,
			svc:         &fakeParticipantService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "duplicate email",
			body:        `{"name":"Ada Lovelace","email":"ada@example.com"}`,
			svc:         &fakeParticipantService{createErr: domain.ErrDuplicateEmail},
			wantStatus:  http.StatusConflict,
			wantErrCode: helpers.ErrCodeConflict,
		},
		{
			name:        "service failure",
			body:        `{"name":"Ada Lovelace","email":"ada@example.com"}`,
			svc:         &fakeParticipantService{createErr: errors.New("db down")},
			wantStatus:  http.StatusInternalServerError,
			wantErrCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewParticipantController(testLogger, tt.svc, false)

			req := httptest.NewRequest(http.MethodPost, "/participants", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			ctrl.CreateParticipant(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantErrCode, envelope.Error.Code, "error code")
		})
	}
}

func TestParticipantController_ListParticipants(t *testing.T) {
	svc := &fakeParticipantService{
		listResult: []*domain.Participant{{ID: testParticipantID, Name: "Ada Lovelace"}},
		listTotal:  1,
	}
	ctrl := NewParticipantController(testLogger, svc, false)

	req := httptest.NewRequest(http.MethodGet, "/participants?name=ada&email=ada@example.com&limit=500", nil)
	rr := httptest.NewRecorder()
	ctrl.ListParticipants(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ada", svc.lastListParams.NameContains)
	assert.Equal(t, "ada@example.com", svc.lastListParams.Email)
	assert.Equal(t, helpers.MaxLimit, svc.lastListParams.Pagination.Limit, "limit is capped")
}

func TestParticipantController_GetParticipant(t *testing.T) {
	tests := []struct {
		name          string
		participantID string
		svc           *fakeParticipantService
		wantStatus    int
	}{
		{
			name:          "found",
			participantID: testParticipantID,
			svc:           &fakeParticipantService{getResult: &domain.Participant{ID: testParticipantID}},
			wantStatus:    http.StatusOK,
		},
		{
			name:          "not found",
			participantID: testParticipantID,
			svc:           &fakeParticipantService{getErr: domain.ErrParticipantNotFound},
			wantStatus:    http.StatusNotFound,
		},
		{
			name:          "malformed id",
			participantID: "42",
			svc:           &fakeParticipantService{},
			wantStatus:    http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewParticipantController(testLogger, tt.svc, false)

			req := httptest.NewRequest(http.MethodGet, "/participants/"+tt.participantID, nil)
			req.SetPathValue("participantID", tt.participantID)
			rr := httptest.NewRecorder()
			ctrl.GetParticipant(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
		})
	}
}

func TestParticipantController_UpdateParticipant(t *testing.T) {
	updated := &domain.Participant{ID: testParticipantID, Name: "Ada King", Email: "ada@example.com"}

	tests := []struct {
		name       string
		body       string
		svc        *fakeParticipantService
		wantStatus int
	}{
		{
			name:       "updated",
			body:       `{"name":"Ada King"}`,
			svc:        &fakeParticipantService{updateResult: updated},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty patch rejected by service",
			body:       `{}`,
			svc:        &fakeParticipantService{updateErr: domain.NewValidationError("at least one of name or email is required")},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "email taken",
			body:       `{"email":"taken@example.com"}`,
			svc:        &fakeParticipantService{updateErr: domain.ErrDuplicateEmail},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not found",
			body:       `{"name":"Ada King"}`,
			svc:        &fakeParticipantService{updateErr: domain.ErrParticipantNotFound},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewParticipantController(testLogger, tt.svc, false)

			req := httptest.NewRequest(http.MethodPatch, "/participants/"+testParticipantID, bytes.NewBufferString(tt.body))
			req.SetPathValue("participantID", testParticipantID)
			rr := httptest.NewRecorder()
			ctrl.UpdateParticipant(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
		})
	}
}

func TestParticipantController_DeleteParticipant(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeParticipantService
		wantStatus int
	}{
		{
			name:       "deleted",
			svc:        &fakeParticipantService{},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "not found",
			svc:        &fakeParticipantService{deleteErr: domain.ErrParticipantNotFound},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewParticipantController(testLogger, tt.svc, false)

			req := httptest.NewRequest(http.MethodDelete, "/participants/"+testParticipantID, nil)
			req.SetPathValue("participantID", testParticipantID)
			rr := httptest.NewRecorder()
			ctrl.DeleteParticipant(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
		})
	}
}
