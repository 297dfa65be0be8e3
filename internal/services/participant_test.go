package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"eventregistry/internal/domain"
)

type mockParticipantRepository struct {
	participants  map[string]*domain.Participant
	err           error
	created       *domain.Participant
	gotListParams domain.ListParticipantsParams
	gotPatch      domain.ParticipantPatch
}

func (m *mockParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	if m.err != nil {
		return m.err
	}
	m.created = p
	return nil
}

func (m *mockParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.participants[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return p, nil
}

func (m *mockParticipantRepository) List(ctx context.Context, params domain.ListParticipantsParams) ([]*domain.Participant, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	m.gotListParams = params
	return []*domain.Participant{}, 0, nil
}

func (m *mockParticipantRepository) Update(ctx context.Context, id string, patch domain.ParticipantPatch) (*domain.Participant, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.participants[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	m.gotPatch = patch
	return p, nil
}

func (m *mockParticipantRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.participants[id]; !ok {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func TestParticipantService_Create(t *testing.T) {
	tests := []struct {
		name       string
		inputName  string
		inputEmail string
		repo       *mockParticipantRepository
		wantName   string
		wantEmail  string
		wantErr    bool
	}{
		{
			name:       "success normalizes input",
			inputName:  "  Ada Lovelace  ",
			inputEmail: " Ada@Example.COM ",
			repo:       &mockParticipantRepository{},
			wantName:   "Ada Lovelace",
			wantEmail:  "ada@example.com",
		},
		{
			name:       "name with accents and hyphen",
			inputName:  "Renée O'Brien-Núñez",
			inputEmail: "renee@example.com",
			repo:       &mockParticipantRepository{},
			wantName:   "Renée O'Brien-Núñez",
			wantEmail:  "renee@example.com",
		},
		{
			name:       "long cyrillic name counted in characters",
			inputName:  strings.Repeat("Ж", 60),
			inputEmail: "zh@example.com",
			repo:       &mockParticipantRepository{},
			wantName:   strings.Repeat("Ж", 60),
			wantEmail:  "zh@example.com",
		},
		{
			name:       "single multibyte character name rejected",
			inputName:  "Ж",
			inputEmail: "zh@example.com",
			repo:       &mockParticipantRepository{},
			wantErr:    true,
		},
		{
			name:       "name with digits rejected",
			inputName:  "R2D2",
			inputEmail: "r2@example.com",
			repo:       &mockParticipantRepository{},
			wantErr:    true,
		},
		{
			name:       "single character name rejected",
			inputName:  "A",
			inputEmail: "a@example.com",
			repo:       &mockParticipantRepository{},
			wantErr:    true,
		},
		{
			name:       "malformed email rejected",
			inputName:  "Ada Lovelace",
			inputEmail: "not-an-email",
			repo:       &mockParticipantRepository{},
			wantErr:    true,
		},
		{
			name:       "overlong email rejected",
			inputName:  "Ada Lovelace",
			inputEmail: strings.Repeat("a", 250) + "@example.com",
			repo:       &mockParticipantRepository{},
			wantErr:    true,
		},
		{
			name:       "duplicate email from repo",
			inputName:  "Ada Lovelace",
			inputEmail: "ada@example.com",
			repo:       &mockParticipantRepository{err: domain.ErrDuplicateEmail},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &participantService{participantRepo: tt.repo, contextTimeout: time.Second}

			got, err := svc.Create(context.Background(), tt.inputName, tt.inputEmail)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.wantName {
				t.Fatalf("expected name %q, got %q", tt.wantName, got.Name)
			}
			if got.Email != tt.wantEmail {
				t.Fatalf("expected email %q, got %q", tt.wantEmail, got.Email)
			}
			if tt.repo.created != got {
				t.Fatal("expected participant to be passed to the repository")
			}
		})
	}
}

func TestParticipantService_Update(t *testing.T) {
	existing := &domain.Participant{ID: "pt-1", Name: "Ada Lovelace", Email: "ada@example.com"}
	upperEmail := " New@Example.COM "
	badName := "123"

	tests := []struct {
		name      string
		id        string
		patch     domain.ParticipantPatch
		wantErr   bool
		wantEmail string
	}{
		{
			name:    "empty patch rejected",
			id:      "pt-1",
			patch:   domain.ParticipantPatch{},
			wantErr: true,
		},
		{
			name:      "email normalized before storage",
			id:        "pt-1",
			patch:     domain.ParticipantPatch{Email: &upperEmail},
			wantEmail: "new@example.com",
		},
		{
			name:    "invalid name rejected",
			id:      "pt-1",
			patch:   domain.ParticipantPatch{Name: &badName},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockParticipantRepository{participants: map[string]*domain.Participant{"pt-1": existing}}
			svc := &participantService{participantRepo: repo, contextTimeout: time.Second}

			_, err := svc.Update(context.Background(), tt.id, tt.patch)
			if tt.wantErr {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.gotPatch.Email == nil || *repo.gotPatch.Email != tt.wantEmail {
				t.Fatalf("expected normalized email %q passed to repo, got %v", tt.wantEmail, repo.gotPatch.Email)
			}
		})
	}
}

func TestParticipantService_List(t *testing.T) {
	repo := &mockParticipantRepository{}
	svc := &participantService{participantRepo: repo, contextTimeout: time.Second}

	_, _, err := svc.List(context.Background(), domain.ListParticipantsParams{
		Pagination: domain.PaginationParams{Page: 1, Limit: 10},
		Email:      " Ada@Example.COM ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotListParams.Email != "ada@example.com" {
		t.Fatalf("expected normalized email filter, got %q", repo.gotListParams.Email)
	}
}

func TestParticipantService_Delete(t *testing.T) {
	repo := &mockParticipantRepository{participants: map[string]*domain.Participant{"pt-1": {ID: "pt-1"}}}
	svc := &participantService{participantRepo: repo, contextTimeout: time.Second}

	if err := svc.Delete(context.Background(), "pt-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), "pt-missing"); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}
