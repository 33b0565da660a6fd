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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, fullname, email, username, role, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, u.ID, u.Fullname, u.Email, u.Username, u.Role, now, now)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	u.CreatedAt = now
	u.UpdatedAt = now

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, fullname, email, username, role, created_at, updated_at
			  FROM users
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmailOrUsername resolves a mirrored identity; either field may match.
func (r *UserRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	query := `SELECT id, fullname, email, username, role, created_at, updated_at
			  FROM users
			  WHERE email = $1 OR username = $2`
	return r.getOne(ctx, query, email, username)
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Fullname, &u.Email, &u.Username, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) UpdateFullname(ctx context.Context, id, fullname string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE users SET fullname = $2, updated_at = now() WHERE id = $1`,
		id, fullname,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	query := `SELECT id, fullname, email, username, role, created_at, updated_at
			  FROM users
			  WHERE role = $1
			  ORDER BY fullname`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Fullname, &u.Email, &u.Username, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}
