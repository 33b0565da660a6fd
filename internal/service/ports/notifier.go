package ports

import (
	"context"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

type Notifier interface {
	NotifyEnrolled(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyUnenrolled(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyTicketCancelled(ctx context.Context, ticket *domain.Ticket, reason string)
}
