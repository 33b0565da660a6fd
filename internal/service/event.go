package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/service/ports"
)

const (
	maxNameLen        = 100
	minDescriptionLen = 10
	maxDescriptionLen = 500

	defaultPageLimit = 10
	maxPageLimit     = 100
)

type EventService struct {
	repo         ports.EventRepo
	locationRepo ports.LocationRepo
	userRepo     ports.UserRepo
	notifier     ports.Notifier
	logger       logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	locationRepo ports.LocationRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:         repo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// checkID rejects malformed identifiers before they reach storage.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, in domain.CreateEventInput) (*domain.EventDetails, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SportType = strings.TrimSpace(in.SportType)

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if len(in.Name) > maxNameLen {
		return nil, fmt.Errorf("%w: name must be at most %d characters", domain.ErrValidation, maxNameLen)
	}
	if len(in.Description) < minDescriptionLen {
		return nil, fmt.Errorf("%w: description must be at least %d characters", domain.ErrValidation, minDescriptionLen)
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description must be at most %d characters", domain.ErrValidation, maxDescriptionLen)
	}
	if in.SportType == "" {
		return nil, fmt.Errorf("%w: sport_type is required", domain.ErrValidation)
	}
	if in.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be a positive integer", domain.ErrValidation)
	}
	if beforeToday(in.Date) {
		return nil, fmt.Errorf("%w: date must be today or in the future", domain.ErrValidation)
	}
	if err := checkID(in.LocationID); err != nil {
		return nil, err
	}
	if _, err := s.locationRepo.GetByID(ctx, in.LocationID); err != nil {
		return nil, fmt.Errorf("check location: %w", err)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		SportType:   in.SportType,
		Date:        in.Date,
		LocationID:  in.LocationID,
		Capacity:    in.Capacity,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("name", event.Name),
		logger.Int("capacity", event.Capacity),
	)

	return s.repo.GetDetails(ctx, event.ID)
}

// beforeToday reports whether the timestamp falls on a day before today (UTC).
func beforeToday(t time.Time) bool {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.Before(today)
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.EventDetails, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context, in domain.ListEventsInput) (*domain.EventPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = defaultPageLimit
	}
	if in.Limit > maxPageLimit {
		in.Limit = maxPageLimit
	}

	events, total, err := s.repo.List(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return &domain.EventPage{
		Events:     events,
		Count:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(in.Limit))),
	}, nil
}

func (s *EventService) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.EventDetails, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		return s.repo.GetDetails(ctx, id)
	}

	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		if trimmed == "" || len(trimmed) > maxNameLen {
			return nil, fmt.Errorf("%w: name must be 1..%d characters", domain.ErrValidation, maxNameLen)
		}
		in.Name = &trimmed
	}
	if in.Description != nil && (len(*in.Description) < minDescriptionLen || len(*in.Description) > maxDescriptionLen) {
		return nil, fmt.Errorf("%w: description must be %d..%d characters",
			domain.ErrValidation, minDescriptionLen, maxDescriptionLen)
	}
	if in.Capacity != nil && *in.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be a positive integer", domain.ErrValidation)
	}
	if in.LocationID != nil {
		if err := checkID(*in.LocationID); err != nil {
			return nil, err
		}
		if _, err := s.locationRepo.GetByID(ctx, *in.LocationID); err != nil {
			return nil, fmt.Errorf("check location: %w", err)
		}
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))
	return nil
}

// AddParticipant enrolls the user. The capacity and duplicate checks run in
// one atomic storage operation; this method only verifies that both sides of
// the enrollment exist.
func (s *EventService) AddParticipant(ctx context.Context, eventID, userID string) (*domain.EventDetails, error) {
	if err := checkID(eventID); err != nil {
		return nil, err
	}
	if err := checkID(userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if err = s.repo.AddParticipant(ctx, eventID, userID); err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	s.logger.Info("participant enrolled",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyEnrolled(context.WithoutCancel(ctx), user, &details.Event)

	return details, nil
}

func (s *EventService) RemoveParticipant(ctx context.Context, eventID, userID string) (*domain.EventDetails, error) {
	if err := checkID(eventID); err != nil {
		return nil, err
	}
	if err := checkID(userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if err = s.repo.RemoveParticipant(ctx, eventID, userID); err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	s.logger.Info("participant removed",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyUnenrolled(context.WithoutCancel(ctx), user, &details.Event)

	return details, nil
}

func (s *EventService) AvailableSpots(ctx context.Context, eventID string) (int, error) {
	if err := checkID(eventID); err != nil {
		return 0, err
	}

	capacity, enrolled, err := s.repo.Occupancy(ctx, eventID)
	if err != nil {
		return 0, err
	}

	return capacity - enrolled, nil
}

func (s *EventService) IsFull(ctx context.Context, eventID string) (bool, error) {
	if err := checkID(eventID); err != nil {
		return false, err
	}

	capacity, enrolled, err := s.repo.Occupancy(ctx, eventID)
	if err != nil {
		return false, err
	}

	return enrolled >= capacity, nil
}

func (s *EventService) Roster(ctx context.Context, eventID string) (*domain.EventRoster, error) {
	if err := checkID(eventID); err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &domain.EventRoster{
		EventID:          details.Event.ID,
		EventName:        details.Event.Name,
		Description:      details.Event.Description,
		SportType:        details.Event.SportType,
		Date:             details.Event.Date,
		Participants:     details.Participants,
		ParticipantCount: len(details.Participants),
	}, nil
}

func (s *EventService) ListByParticipant(ctx context.Context, userID string) ([]*domain.Event, error) {
	if err := checkID(userID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.repo.ListByParticipant(ctx, userID)
}
