package ports

import (
	"context"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, in domain.ListEventsInput) ([]*domain.EventDetails, int, error)
	Update(ctx context.Context, id string, in domain.UpdateEventInput) error
	Delete(ctx context.Context, id string) error
	AddParticipant(ctx context.Context, eventID, userID string) error
	RemoveParticipant(ctx context.Context, eventID, userID string) error
	Occupancy(ctx context.Context, eventID string) (capacity, enrolled int, err error)
	ListByParticipant(ctx context.Context, userID string) ([]*domain.Event, error)
}
