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

type LocationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLocationRepo(db *dbpg.DB) *LocationRepository {
	return &LocationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LocationRepository) Create(ctx context.Context, l *domain.Location) error {
	query := `INSERT INTO locations (id, address, city, country, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, l.ID, l.Address, l.City, l.Country, now, now)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	l.CreatedAt = now
	l.UpdatedAt = now

	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	query := `SELECT id, address, city, country, created_at, updated_at
			  FROM locations
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}

	var l domain.Location
	if err = row.Scan(&l.ID, &l.Address, &l.City, &l.Country, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("scan location: %w", err)
	}

	return &l, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	query := `SELECT id, address, city, country, created_at, updated_at
			  FROM locations
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Location, 0)
	for rows.Next() {
		var l domain.Location
		if err = rows.Scan(&l.ID, &l.Address, &l.City, &l.Country, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}

func (r *LocationRepository) Update(ctx context.Context, id string, in domain.UpdateLocationInput) error {
	query := `UPDATE locations
			  SET address    = COALESCE($2, address),
			      city       = COALESCE($3, city),
			      country    = COALESCE($4, country),
			      updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, in.Address, in.City, in.Country)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update location rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrLocationNotFound
	}

	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: location is referenced by an event", domain.ErrValidation)
		}
		return fmt.Errorf("delete location: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete location rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrLocationNotFound
	}

	return nil
}
