package ports

import (
	"context"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)
	UpdateFullname(ctx context.Context, id, fullname string) error
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}
