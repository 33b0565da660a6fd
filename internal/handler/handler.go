package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/handler/dto"
)

type EventSvc interface {
	Create(ctx context.Context, in domain.CreateEventInput) (*domain.EventDetails, error)
	Get(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, in domain.ListEventsInput) (*domain.EventPage, error)
	Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.EventDetails, error)
	Delete(ctx context.Context, id string) error
	AddParticipant(ctx context.Context, eventID, userID string) (*domain.EventDetails, error)
	RemoveParticipant(ctx context.Context, eventID, userID string) (*domain.EventDetails, error)
	AvailableSpots(ctx context.Context, eventID string) (int, error)
	Roster(ctx context.Context, eventID string) (*domain.EventRoster, error)
	ListByParticipant(ctx context.Context, userID string) ([]*domain.Event, error)
}

type LocationSvc interface {
	Create(ctx context.Context, in domain.CreateLocationInput) (*domain.Location, error)
	Get(ctx context.Context, id string) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
	Update(ctx context.Context, id string, in domain.UpdateLocationInput) (*domain.Location, error)
	Delete(ctx context.Context, id string) error
}

type UserSvc interface {
	Participants(ctx context.Context) ([]*domain.User, int, error)
}

type TicketSvc interface {
	Create(ctx context.Context, in domain.CreateTicketInput) (*domain.Ticket, error)
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]*domain.Ticket, int, error)
	Update(ctx context.Context, id string, in domain.UpdateTicketInput) (*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
}

type AuthSvc interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error)
}

type Handler struct {
	eventService    EventSvc
	locationService LocationSvc
	userService     UserSvc
	ticketService   TicketSvc
	authService     AuthSvc
}

func NewHandler(
	eventService EventSvc,
	locationService LocationSvc,
	userService UserSvc,
	ticketService TicketSvc,
	authService AuthSvc,
) *Handler {
	return &Handler{
		eventService:    eventService,
		locationService: locationService,
		userService:     userService,
		ticketService:   ticketService,
		authService:     authService,
	}
}

func (h *Handler) respond(c *ginext.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.Response{StatusCode: status, Message: message, Data: data})
}

func (h *Handler) badRequest(c *ginext.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Response{StatusCode: http.StatusBadRequest, Message: message})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var status int
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrInvalidID):
		status = http.StatusNotFound

	case errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrNotEnrolled),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrNotConfirmed):
		status = http.StatusConflict

	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest

	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized

	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden

	default:
		c.JSON(http.StatusInternalServerError, dto.Response{
			StatusCode: http.StatusInternalServerError,
			Message:    "internal server error",
		})
		return
	}

	c.JSON(status, dto.Response{StatusCode: status, Message: err.Error()})
}
