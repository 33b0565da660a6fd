package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

const reasonEventStarted = "event has started"

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (id, event_id, user_id, status, ticket_number, is_checked_in, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.EventID, t.UserID, t.Status, t.TicketNumber, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return domain.ErrDuplicateTicket
			case pgForeignKeyViolation:
				return domain.ErrEventNotFound
			}
		}
		return fmt.Errorf("insert ticket: %w", err)
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT id, event_id, user_id, status, ticket_number, is_checked_in,
					 checked_in_at, cancellation_reason, cancelled_at, created_at, updated_at
			  FROM tickets
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = scanTicket(row.Scan, &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

func scanTicket(scan func(...interface{}) error, t *domain.Ticket) error {
	return scan(
		&t.ID, &t.EventID, &t.UserID, &t.Status, &t.TicketNumber, &t.IsCheckedIn,
		&t.CheckedInAt, &t.CancellationReason, &t.CancelledAt, &t.CreatedAt, &t.UpdatedAt,
	)
}

func (r *TicketRepository) List(ctx context.Context) ([]*domain.Ticket, error) {
	query := `SELECT id, event_id, user_id, status, ticket_number, is_checked_in,
					 checked_in_at, cancellation_reason, cancelled_at, created_at, updated_at
			  FROM tickets
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err = scanTicket(rows.Scan, &t); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

// UpdateStatus moves the ticket from one status to another in a single
// conditional update. Zero rows affected means the ticket is gone or no
// longer in the expected status; the caller gets the precise reason.
func (r *TicketRepository) UpdateStatus(ctx context.Context, id string, from, to domain.TicketStatus, reason *string) error {
	query := `UPDATE tickets
			  SET status              = $3,
			      cancellation_reason = CASE WHEN $3 = 'CANCELLED' THEN $4 ELSE cancellation_reason END,
			      cancelled_at        = CASE WHEN $3 = 'CANCELLED' THEN now() ELSE cancelled_at END,
			      updated_at          = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to, reason)
	if err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ticket rows affected: %w", err)
	}
	if rows == 0 {
		if _, err = r.GetByID(ctx, id); err != nil {
			return err
		}
		// Ticket exists but moved out of `from` concurrently.
		return domain.ErrInvalidTransition
	}

	return nil
}

// CheckIn marks a confirmed ticket as checked in, once.
func (r *TicketRepository) CheckIn(ctx context.Context, id string) error {
	query := `UPDATE tickets
			  SET is_checked_in = TRUE, checked_in_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $2 AND NOT is_checked_in`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.TicketStatusConfirmed)
	if err != nil {
		return fmt.Errorf("check in ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ticket rows affected: %w", err)
	}
	if rows == 0 {
		t, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t.IsCheckedIn {
			return domain.ErrAlreadyCheckedIn
		}
		return domain.ErrNotConfirmed
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete ticket rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

// CancelStarted cancels every pending ticket whose event date has passed and
// returns the cancelled tickets for notification.
func (r *TicketRepository) CancelStarted(ctx context.Context) ([]*domain.Ticket, error) {
	query := `UPDATE tickets t
			  SET status              = $2,
			      cancellation_reason = $3,
			      cancelled_at        = now(),
			      updated_at          = now()
			  FROM events e
			  WHERE t.event_id = e.id
			    AND t.status = $1
			    AND e.date < now()
			  RETURNING t.id, t.event_id, t.user_id, t.status, t.ticket_number, t.is_checked_in,
			            t.checked_in_at, t.cancellation_reason, t.cancelled_at, t.created_at, t.updated_at`
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.TicketStatusPending, domain.TicketStatusCancelled, reasonEventStarted,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel started: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err = scanTicket(rows.Scan, &t); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
