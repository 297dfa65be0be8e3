// Package postgres implements the domain repositories on PostgreSQL via
// database/sql and lib/pq. Schema migrations are managed outside this
// process; the repositories expect three tables:
//
//	events(id uuid pk, title, description, event_date, capacity, created_at, updated_at)
//	participants(id uuid pk, name, email unique, created_at, updated_at)
//	event_participants(event_id fk cascade, participant_id fk cascade,
//	                   registered_at, unique(event_id, participant_id))
//
// Constraint violations and missing rows are translated to domain errors
// at the point of occurrence.
package postgres
