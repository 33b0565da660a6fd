package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, description, sport_type, date, location_id, capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.SportType, e.Date,
		e.LocationID, e.Capacity, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrLocationNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, name, description, sport_type, date, location_id, capacity, created_at, updated_at
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Name, &e.Description, &e.SportType, &e.Date,
		&e.LocationID, &e.Capacity, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

// GetDetails returns the event with its location and participant list
// resolved, participants ordered by enrollment time.
func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `SELECT e.id, e.name, e.description, e.sport_type, e.date, e.location_id, e.capacity,
					 e.created_at, e.updated_at,
					 l.id, l.address, l.city, l.country, l.created_at, l.updated_at
			  FROM events e
			  JOIN locations l ON l.id = e.location_id
			  WHERE e.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	if err = row.Scan(
		&d.Event.ID, &d.Event.Name, &d.Event.Description, &d.Event.SportType,
		&d.Event.Date, &d.Event.LocationID, &d.Event.Capacity,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.Location.ID, &d.Location.Address, &d.Location.City,
		&d.Location.Country, &d.Location.CreatedAt, &d.Location.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	d.Participants, err = r.listParticipants(ctx, id)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *EventRepository) listParticipants(ctx context.Context, eventID string) ([]domain.User, error) {
	query := `SELECT u.id, u.fullname, u.email, u.username, u.role, u.created_at, u.updated_at
			  FROM event_participants ep
			  JOIN users u ON u.id = ep.user_id
			  WHERE ep.event_id = $1
			  ORDER BY ep.joined_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	participants := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Fullname, &u.Email, &u.Username, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, u)
	}

	return participants, rows.Err()
}

// List returns one page of events matching the search term, newest first,
// together with the total match count. Search is a case-insensitive
// substring match over name and sport type.
func (r *EventRepository) List(ctx context.Context, in domain.ListEventsInput) ([]*domain.EventDetails, int, error) {
	where := ""
	args := []interface{}{}
	if in.Search != "" {
		where = `WHERE e.name ILIKE $1 OR e.sport_type ILIKE $1`
		args = append(args, "%"+escapeLike(in.Search)+"%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events e %s`, where)
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan event count: %w", err)
	}

	offset := (in.Page - 1) * in.Limit
	query := fmt.Sprintf(`
		SELECT e.id, e.name, e.description, e.sport_type, e.date, e.location_id, e.capacity,
			   e.created_at, e.updated_at,
			   l.id, l.address, l.city, l.country, l.created_at, l.updated_at
		FROM events e
		JOIN locations l ON l.id = e.location_id
		%s
		ORDER BY e.date DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, in.Limit, offset)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.EventDetails, 0)
	for rows.Next() {
		var d domain.EventDetails
		if err = rows.Scan(
			&d.Event.ID, &d.Event.Name, &d.Event.Description, &d.Event.SportType,
			&d.Event.Date, &d.Event.LocationID, &d.Event.Capacity,
			&d.Event.CreatedAt, &d.Event.UpdatedAt,
			&d.Location.ID, &d.Location.Address, &d.Location.City,
			&d.Location.Country, &d.Location.CreatedAt, &d.Location.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, d := range res {
		if d.Participants, err = r.listParticipants(ctx, d.Event.ID); err != nil {
			return nil, 0, err
		}
	}

	return res, total, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// Update applies a partial update inside a transaction. Lowering capacity
// below the current enrollment is rejected while the event row is locked, so
// the capacity invariant cannot be broken by a shrinking update racing an
// enrollment.
func (r *EventRepository) Update(ctx context.Context, id string, in domain.UpdateEventInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	if err = tx.QueryRowContext(ctx,
		`SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, id,
	).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if in.Capacity != nil {
		var enrolled int
		if err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, id,
		).Scan(&enrolled); err != nil {
			return fmt.Errorf("count participants: %w", err)
		}
		if *in.Capacity < enrolled {
			return fmt.Errorf("%w: capacity cannot be lower than current participants (%d)",
				domain.ErrValidation, enrolled)
		}
	}

	query := `UPDATE events
			  SET name        = COALESCE($2, name),
			      description = COALESCE($3, description),
			      sport_type  = COALESCE($4, sport_type),
			      date        = COALESCE($5, date),
			      location_id = COALESCE($6, location_id),
			      capacity    = COALESCE($7, capacity),
			      updated_at  = now()
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query,
		id, in.Name, in.Description, in.SportType, in.Date, in.LocationID, in.Capacity,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrLocationNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}

	return tx.Commit()
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// AddParticipant enrolls the user in a single atomic step. The event row is
// locked for the duration of the transaction, so two enrollments racing for
// the last spot serialize and only one can pass the capacity check. Duplicate
// enrollment is rejected by the unique constraint.
func (r *EventRepository) AddParticipant(ctx context.Context, eventID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	if err = tx.QueryRowContext(ctx,
		`SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, eventID,
	).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	var enrolled int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, eventID,
	).Scan(&enrolled); err != nil {
		return fmt.Errorf("count participants: %w", err)
	}

	if enrolled >= capacity {
		return domain.ErrEventFull
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO event_participants (event_id, user_id, joined_at) VALUES ($1, $2, now())`,
		eventID, userID,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return domain.ErrAlreadyEnrolled
			case pgForeignKeyViolation:
				return domain.ErrUserNotFound
			}
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	return tx.Commit()
}

func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, userID string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM event_participants WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove participant rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing event from a user that was never enrolled.
		if _, err = r.GetByID(ctx, eventID); err != nil {
			return err
		}
		return domain.ErrNotEnrolled
	}

	return nil
}

// Occupancy returns the event capacity and the current enrollment count in
// one round trip.
func (r *EventRepository) Occupancy(ctx context.Context, eventID string) (capacity, enrolled int, err error) {
	query := `SELECT e.capacity, COUNT(ep.user_id)
			  FROM events e
			  LEFT JOIN event_participants ep ON ep.event_id = e.id
			  WHERE e.id = $1
			  GROUP BY e.id`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrEventNotFound
		}
		return 0, 0, fmt.Errorf("get occupancy: %w", err)
	}

	if err = row.Scan(&capacity, &enrolled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrEventNotFound
		}
		return 0, 0, fmt.Errorf("scan occupancy: %w", err)
	}

	return capacity, enrolled, nil
}

// ListByParticipant is the rebuildable projection of "events this user is
// enrolled in"; the join table is the source of truth.
func (r *EventRepository) ListByParticipant(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT e.id, e.name, e.description, e.sport_type, e.date, e.location_id, e.capacity,
					 e.created_at, e.updated_at
			  FROM event_participants ep
			  JOIN events e ON e.id = ep.event_id
			  WHERE ep.user_id = $1
			  ORDER BY e.date DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list events by participant: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.SportType, &e.Date,
			&e.LocationID, &e.Capacity, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
