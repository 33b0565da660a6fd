package ports

import (
	"context"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

type LocationRepo interface {
	Create(ctx context.Context, l *domain.Location) error
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
	Update(ctx context.Context, id string, in domain.UpdateLocationInput) error
	Delete(ctx context.Context, id string) error
}
