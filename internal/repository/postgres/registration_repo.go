package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"eventregistry/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register runs the whole registration workflow in one transaction.
//
// SELECT ... FOR UPDATE on the event row serializes concurrent attempts per
// event: the second transaction blocks on the lock until the first commits,
// so the count it reads already includes the first insert. A plain
// read-count-then-insert would let two attempts at capacity-1 both succeed.
// The lock holds across server processes since it lives in the database,
// and the unique constraint on (event_id, participant_id) backstops the
// duplicate check.
func (r *registrationRepository) Register(ctx context.Context, eventID, participantID string) (reg *domain.Registration, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var capacity int
	err = tx.QueryRowContext(ctx,
		`SELECT capacity FROM events WHERE id = $1 FOR UPDATE`,
		eventID,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event row: %w", err)
	}

	var participantExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM participants WHERE id = $1)`,
		participantID,
	).Scan(&participantExists)
	if err != nil {
		return nil, fmt.Errorf("check participant: %w", err)
	}
	if !participantExists {
		return nil, domain.ErrParticipantNotFound
	}

	var registered int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`,
		eventID,
	).Scan(&registered)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if registered >= capacity {
		return nil, domain.ErrEventFull
	}

	var duplicate bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM event_participants WHERE event_id = $1 AND participant_id = $2)`,
		eventID, participantID,
	).Scan(&duplicate)
	if err != nil {
		return nil, fmt.Errorf("check duplicate registration: %w", err)
	}
	if duplicate {
		return nil, domain.ErrAlreadyRegistered
	}

	reg = &domain.Registration{
		EventID:       eventID,
		ParticipantID: participantID,
		RegisteredAt:  time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO event_participants (event_id, participant_id, registered_at) VALUES ($1, $2, $3)`,
		reg.EventID, reg.ParticipantID, reg.RegisteredAt,
	)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return reg, nil
}

func (r *registrationRepository) Remove(ctx context.Context, eventID, participantID string) error {
	query := `DELETE FROM event_participants WHERE event_id = $1 AND participant_id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, participantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string, p domain.PaginationParams) ([]*domain.RegisteredParticipant, int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`,
		eventID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count event registrations: %w", err)
	}

	query := `
		SELECT p.id, p.name, p.email, p.created_at, p.updated_at, ep.registered_at
		FROM event_participants ep
		JOIN participants p ON p.id = ep.participant_id
		WHERE ep.event_id = $1
		ORDER BY ep.registered_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	participants := make([]*domain.RegisteredParticipant, 0)
	for rows.Next() {
		rp := &domain.RegisteredParticipant{Participant: &domain.Participant{}}
		if err := rows.Scan(
			&rp.Participant.ID, &rp.Participant.Name, &rp.Participant.Email,
			&rp.Participant.CreatedAt, &rp.Participant.UpdatedAt, &rp.RegisteredAt,
		); err != nil {
			return nil, 0, err
		}
		participants = append(participants, rp)
	}
	return participants, total, rows.Err()
}

func (r *registrationRepository) ListByParticipantID(ctx context.Context, participantID string, p domain.PaginationParams) ([]*domain.RegisteredEvent, int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_participants WHERE participant_id = $1`,
		participantID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count participant registrations: %w", err)
	}

	query := `
		SELECT e.id, e.title, e.description, e.event_date, e.capacity, e.created_at, e.updated_at, ep.registered_at
		FROM event_participants ep
		JOIN events e ON e.id = ep.event_id
		WHERE ep.participant_id = $1
		ORDER BY ep.registered_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, participantID, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.RegisteredEvent, 0)
	for rows.Next() {
		re := &domain.RegisteredEvent{Event: &domain.Event{}}
		if err := rows.Scan(
			&re.Event.ID, &re.Event.Title, &re.Event.Description, &re.Event.EventDate,
			&re.Event.Capacity, &re.Event.CreatedAt, &re.Event.UpdatedAt, &re.RegisteredAt,
		); err != nil {
			return nil, 0, err
		}
		events = append(events, re)
	}
	return events, total, rows.Err()
}
