package ports

import (
	"context"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

type TicketRepo interface {
	Create(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]*domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.TicketStatus, reason *string) error
	CheckIn(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CancelStarted(ctx context.Context) ([]*domain.Ticket, error)
}
