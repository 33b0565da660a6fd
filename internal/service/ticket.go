package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/service/ports"
)

// ticketNumberAttempts bounds regeneration when a generated number collides.
const ticketNumberAttempts = 3

type TicketService struct {
	repo      ports.TicketRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	logger    logger.Logger
}

func NewTicketService(
	repo ports.TicketRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *TicketService) Create(ctx context.Context, in domain.CreateTicketInput) (*domain.Ticket, error) {
	if err := checkID(in.EventID); err != nil {
		return nil, err
	}
	if err := checkID(in.UserID); err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.GetByID(ctx, in.EventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user.Role != domain.RoleParticipant {
		return nil, fmt.Errorf("%w: only participants can hold tickets", domain.ErrValidation)
	}

	ticket := &domain.Ticket{
		ID:      uuid.New().String(),
		EventID: in.EventID,
		UserID:  in.UserID,
		Status:  domain.TicketStatusPending,
	}

	for attempt := 0; ; attempt++ {
		ticket.TicketNumber = domain.NewTicketNumber()
		err = s.repo.Create(ctx, ticket)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicateTicket) && attempt < ticketNumberAttempts-1 {
			continue
		}
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.logger.Info("ticket created",
		logger.String("ticket_id", ticket.ID),
		logger.String("ticket_number", ticket.TicketNumber),
		logger.String("event_id", ticket.EventID),
	)

	return ticket, nil
}

func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *TicketService) List(ctx context.Context) ([]*domain.Ticket, int, error) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, len(tickets), nil
}

// Update applies a check-in or a status transition. Transition legality is
// checked against the current status; the conditional storage update catches
// a status that changed underneath us.
func (s *TicketService) Update(ctx context.Context, id string, in domain.UpdateTicketInput) (*domain.Ticket, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CheckIn {
		if err = s.repo.CheckIn(ctx, id); err != nil {
			return nil, err
		}
		return s.repo.GetByID(ctx, id)
	}

	if in.Status == nil {
		return ticket, nil
	}
	next := *in.Status
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, next)
	}
	if !ticket.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, ticket.Status, next)
	}
	if next == domain.TicketStatusCancelled &&
		(in.CancellationReason == nil || *in.CancellationReason == "") {
		return nil, fmt.Errorf("%w: cancellation_reason is required", domain.ErrValidation)
	}

	if err = s.repo.UpdateStatus(ctx, id, ticket.Status, next, in.CancellationReason); err != nil {
		return nil, err
	}

	s.logger.Info("ticket status updated",
		logger.String("ticket_id", id),
		logger.String("from", string(ticket.Status)),
		logger.String("to", string(next)),
	)

	return s.repo.GetByID(ctx, id)
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("ticket deleted", logger.String("ticket_id", id))
	return nil
}

// CancelStarted cancels pending tickets for events that already began and
// notifies the holders. Invoked by the scheduler.
func (s *TicketService) CancelStarted(ctx context.Context) ([]*domain.Ticket, error) {
	cancelled, err := s.repo.CancelStarted(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel started: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending tickets cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *TicketService) notifyCancelled(ctx context.Context, tickets []*domain.Ticket) {
	for _, t := range tickets {
		reason := ""
		if t.CancellationReason != nil {
			reason = *t.CancellationReason
		}
		s.notifier.NotifyTicketCancelled(ctx, t, reason)
	}
}
