package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

type TicketReaper interface {
	CancelStarted(ctx context.Context) ([]*domain.Ticket, error)
}

// Scheduler periodically cancels pending tickets whose event has already
// started, so PENDING has a deterministic exit.
type Scheduler struct {
	ticketService TicketReaper
	interval      time.Duration
	logger        logger.Logger
}

func New(ticketService TicketReaper, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		ticketService: ticketService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.ticketService.CancelStarted(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale tickets",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, t := range cancelled {
		s.logger.Info("ticket cancelled",
			logger.String("ticket_id", t.ID),
			logger.String("ticket_number", t.TicketNumber),
			logger.String("event_id", t.EventID),
		)
	}
}
