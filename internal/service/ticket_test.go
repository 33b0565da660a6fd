package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/service/ports/mocks"
)

const testTicketID = "9d4f2c1a-7b6e-4a3d-8c5f-1e0b9a7d4f13"

var ticketNumberPattern = regexp.MustCompile(`^TIX-\d+-\d{3}$`)

func newTicketService(t *testing.T) (*TicketService, *mocks.MockTicketRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewTicketService(ticketRepo, eventRepo, userRepo, notifier, newTestLogger(t))
	return svc, ticketRepo, eventRepo, userRepo, notifier
}

func TestTicketService_Create_Success(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _ := newTicketService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, testEventID).Return(&domain.Event{ID: testEventID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, testUserID).
		Return(&domain.User{ID: testUserID, Role: domain.RoleParticipant}, nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.Create(context.Background(), domain.CreateTicketInput{
		EventID: testEventID,
		UserID:  testUserID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusPending, ticket.Status)
	assert.Equal(t, testEventID, ticket.EventID)
	assert.Equal(t, testUserID, ticket.UserID)
	assert.Regexp(t, ticketNumberPattern, ticket.TicketNumber)
	assert.False(t, ticket.IsCheckedIn)
}

func TestTicketService_Create_RegeneratesNumberOnCollision(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _ := newTicketService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, testEventID).Return(&domain.Event{ID: testEventID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, testUserID).
		Return(&domain.User{ID: testUserID, Role: domain.RoleParticipant}, nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateTicket).Twice()
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	ticket, err := svc.Create(context.Background(), domain.CreateTicketInput{
		EventID: testEventID,
		UserID:  testUserID,
	})

	require.NoError(t, err)
	assert.Regexp(t, ticketNumberPattern, ticket.TicketNumber)
}

func TestTicketService_Create_CollisionsExhausted(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _ := newTicketService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, testEventID).Return(&domain.Event{ID: testEventID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, testUserID).
		Return(&domain.User{ID: testUserID, Role: domain.RoleParticipant}, nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateTicket).Times(3)

	_, err := svc.Create(context.Background(), domain.CreateTicketInput{
		EventID: testEventID,
		UserID:  testUserID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateTicket)
}

func TestTicketService_Create_OrganizerRejected(t *testing.T) {
	svc, _, eventRepo, userRepo, _ := newTicketService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, testEventID).Return(&domain.Event{ID: testEventID}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, testUserID).
		Return(&domain.User{ID: testUserID, Role: domain.RoleOrganizer}, nil)

	_, err := svc.Create(context.Background(), domain.CreateTicketInput{
		EventID: testEventID,
		UserID:  testUserID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_Create_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _, _ := newTicketService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, testEventID).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), domain.CreateTicketInput{
		EventID: testEventID,
		UserID:  testUserID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestTicketService_Update_Confirm(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	pending := &domain.Ticket{ID: testTicketID, Status: domain.TicketStatusPending}
	confirmed := &domain.Ticket{ID: testTicketID, Status: domain.TicketStatusConfirmed}

	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).Return(pending, nil).Once()
	ticketRepo.EXPECT().
		UpdateStatus(mock.Anything, testTicketID, domain.TicketStatusPending, domain.TicketStatusConfirmed, (*string)(nil)).
		Return(nil)
	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).Return(confirmed, nil).Once()

	status := domain.TicketStatusConfirmed
	got, err := svc.Update(context.Background(), testTicketID, domain.UpdateTicketInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusConfirmed, got.Status)
}

func TestTicketService_Update_CancelRequiresReason(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).
		Return(&domain.Ticket{ID: testTicketID, Status: domain.TicketStatusPending}, nil)

	status := domain.TicketStatusCancelled
	_, err := svc.Update(context.Background(), testTicketID, domain.UpdateTicketInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_Update_CancelWithReason(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	reason := "injured"
	cancelled := &domain.Ticket{
		ID:                 testTicketID,
		Status:             domain.TicketStatusCancelled,
		CancellationReason: &reason,
	}

	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).
		Return(&domain.Ticket{ID: testTicketID, Status: domain.TicketStatusConfirmed}, nil).Once()
	ticketRepo.EXPECT().
		UpdateStatus(mock.Anything, testTicketID, domain.TicketStatusConfirmed, domain.TicketStatusCancelled, &reason).
		Return(nil)
	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).Return(cancelled, nil).Once()

	status := domain.TicketStatusCancelled
	got, err := svc.Update(context.Background(), testTicketID, domain.UpdateTicketInput{
		Status:             &status,
		CancellationReason: &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusCancelled, got.Status)
	require.NotNil(t, got.CancellationReason)
	assert.Equal(t, "injured", *got.CancellationReason)
}

func TestTicketService_Update_CancelledIsTerminal(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).
		Return(&domain.Ticket{ID: testTicketID, Status: domain.TicketStatusCancelled}, nil)

	status := domain.TicketStatusConfirmed
	_, err := svc.Update(context.Background(), testTicketID, domain.UpdateTicketInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTicketService_Update_UnknownStatus(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).
		Return(&domain.Ticket{ID: testTicketID, Status: domain.TicketStatusPending}, nil)

	status := domain.TicketStatus("ARCHIVED")
	_, err := svc.Update(context.Background(), testTicketID, domain.UpdateTicketInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_Update_CheckIn(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	now := time.Now()
	checkedIn := &domain.Ticket{
		ID:          testTicketID,
		Status:      domain.TicketStatusConfirmed,
		IsCheckedIn: true,
		CheckedInAt: &now,
	}

	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).
		Return(&domain.Ticket{ID: testTicketID, Status: domain.TicketStatusConfirmed}, nil).Once()
	ticketRepo.EXPECT().CheckIn(mock.Anything, testTicketID).Return(nil)
	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).Return(checkedIn, nil).Once()

	got, err := svc.Update(context.Background(), testTicketID, domain.UpdateTicketInput{CheckIn: true})

	require.NoError(t, err)
	assert.True(t, got.IsCheckedIn)
	assert.NotNil(t, got.CheckedInAt)
}

func TestTicketService_Update_CheckInRequiresConfirmed(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).
		Return(&domain.Ticket{ID: testTicketID, Status: domain.TicketStatusPending}, nil)
	ticketRepo.EXPECT().CheckIn(mock.Anything, testTicketID).Return(domain.ErrNotConfirmed)

	_, err := svc.Update(context.Background(), testTicketID, domain.UpdateTicketInput{CheckIn: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
}

func TestTicketService_Update_CheckInOnlyOnce(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	ticketRepo.EXPECT().GetByID(mock.Anything, testTicketID).
		Return(&domain.Ticket{ID: testTicketID, Status: domain.TicketStatusConfirmed, IsCheckedIn: true}, nil)
	ticketRepo.EXPECT().CheckIn(mock.Anything, testTicketID).Return(domain.ErrAlreadyCheckedIn)

	_, err := svc.Update(context.Background(), testTicketID, domain.UpdateTicketInput{CheckIn: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestTicketService_List(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	ticketRepo.EXPECT().List(mock.Anything).Return([]*domain.Ticket{
		{ID: testTicketID, Status: domain.TicketStatusPending},
	}, nil)

	tickets, count, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, tickets, 1)
}

func TestTicketService_CancelStarted_NotifiesHolders(t *testing.T) {
	svc, ticketRepo, _, _, notifier := newTicketService(t)

	reason := "event has started"
	cancelled := []*domain.Ticket{
		{ID: testTicketID, EventID: testEventID, CancellationReason: &reason},
	}

	ticketRepo.EXPECT().CancelStarted(mock.Anything).Return(cancelled, nil)
	notifier.EXPECT().NotifyTicketCancelled(mock.Anything, cancelled[0], reason).Return()

	got, err := svc.CancelStarted(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestTicketService_CancelStarted_NoneStale(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	ticketRepo.EXPECT().CancelStarted(mock.Anything).Return(nil, nil)

	got, err := svc.CancelStarted(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTicketService_CancelStarted_RepoError(t *testing.T) {
	svc, ticketRepo, _, _, _ := newTicketService(t)

	ticketRepo.EXPECT().CancelStarted(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CancelStarted(context.Background())

	require.Error(t, err)
}

func TestTicketService_Delete_MalformedID(t *testing.T) {
	svc, _, _, _, _ := newTicketService(t)

	err := svc.Delete(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
