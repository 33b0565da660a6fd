package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/service/ports/mocks"
)

const (
	testEventID    = "2f9d9f4e-4a3b-4c57-9e47-8a5cf32f9f10"
	testUserID     = "7c1a9e0d-6a0f-4d2a-b1f5-3f6f0d9f2b11"
	testLocationID = "c2b9a1d4-8e3f-4f6a-9c0d-5e7b2a4f8c12"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockLocationRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewEventService(eventRepo, locationRepo, userRepo, notifier, newTestLogger(t))
	return svc, eventRepo, locationRepo, userRepo, notifier
}

func validCreateEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Name:        "City Marathon",
		Description: "Annual 42km run through the old town",
		SportType:   "running",
		Date:        time.Now().Add(48 * time.Hour),
		LocationID:  testLocationID,
		Capacity:    100,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, eventRepo, locationRepo, _, _ := newEventService(t)

	in := validCreateEventInput()
	location := &domain.Location{ID: testLocationID, City: "Lisbon"}

	locationRepo.EXPECT().GetByID(mock.Anything, testLocationID).Return(location, nil)

	var createdID string
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, e *domain.Event) {
			createdID = e.ID
			assert.Equal(t, in.Name, e.Name)
			assert.Equal(t, in.Capacity, e.Capacity)
		}).
		Return(nil)
	eventRepo.EXPECT().GetDetails(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, id string) (*domain.EventDetails, error) {
			return &domain.EventDetails{
				Event:    domain.Event{ID: id, Name: in.Name, Capacity: in.Capacity},
				Location: *location,
			}, nil
		})

	details, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, createdID, details.Event.ID)
	assert.Equal(t, "Lisbon", details.Location.City)
	assert.Empty(t, details.Participants)
}

func TestEventService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.CreateEventInput)
	}{
		{"blank name", func(in *domain.CreateEventInput) { in.Name = "   " }},
		{"name too long", func(in *domain.CreateEventInput) { in.Name = strings.Repeat("x", 101) }},
		{"description too short", func(in *domain.CreateEventInput) { in.Description = "short" }},
		{"description too long", func(in *domain.CreateEventInput) { in.Description = strings.Repeat("x", 501) }},
		{"blank sport type", func(in *domain.CreateEventInput) { in.SportType = "" }},
		{"zero capacity", func(in *domain.CreateEventInput) { in.Capacity = 0 }},
		{"negative capacity", func(in *domain.CreateEventInput) { in.Capacity = -5 }},
		{"past date", func(in *domain.CreateEventInput) { in.Date = time.Now().Add(-48 * time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _, _ := newEventService(t)

			in := validCreateEventInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_MalformedLocationID(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	in := validCreateEventInput()
	in.LocationID = "not-a-uuid"

	_, err := svc.Create(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestEventService_Create_LocationNotFound(t *testing.T) {
	svc, _, locationRepo, _, _ := newEventService(t)

	locationRepo.EXPECT().GetByID(mock.Anything, testLocationID).Return(nil, domain.ErrLocationNotFound)

	_, err := svc.Create(context.Background(), validCreateEventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestEventService_Get_MalformedID(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	_, err := svc.Get(context.Background(), "42")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestEventService_List_AppliesDefaults(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().
		List(mock.Anything, domain.ListEventsInput{Page: 1, Limit: 10}).
		Return([]*domain.EventDetails{{Event: domain.Event{ID: testEventID}}}, 25, nil)

	page, err := svc.List(context.Background(), domain.ListEventsInput{})

	require.NoError(t, err)
	assert.Equal(t, 25, page.Count)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Events, 1)
}

func TestEventService_List_ClampsLimit(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().
		List(mock.Anything, domain.ListEventsInput{Page: 2, Limit: 100, Search: "marathon"}).
		Return(nil, 0, nil)

	page, err := svc.List(context.Background(), domain.ListEventsInput{Page: 2, Limit: 5000, Search: "marathon"})

	require.NoError(t, err)
	assert.Equal(t, 0, page.Count)
	assert.Equal(t, 0, page.TotalPages)
}

func TestEventService_Update_EmptyInputReturnsCurrent(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	details := &domain.EventDetails{Event: domain.Event{ID: testEventID, Name: "Unchanged"}}
	eventRepo.EXPECT().GetDetails(mock.Anything, testEventID).Return(details, nil)

	got, err := svc.Update(context.Background(), testEventID, domain.UpdateEventInput{})

	require.NoError(t, err)
	assert.Equal(t, "Unchanged", got.Event.Name)
}

func TestEventService_Update_RejectsBlankName(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	name := "   "
	_, err := svc.Update(context.Background(), testEventID, domain.UpdateEventInput{Name: &name})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_ChecksNewLocation(t *testing.T) {
	svc, _, locationRepo, _, _ := newEventService(t)

	locationRepo.EXPECT().GetByID(mock.Anything, testLocationID).Return(nil, domain.ErrLocationNotFound)

	locID := testLocationID
	_, err := svc.Update(context.Background(), testEventID, domain.UpdateEventInput{LocationID: &locID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestEventService_Update_CapacityBelowEnrolled(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	capacity := 1
	eventRepo.EXPECT().
		Update(mock.Anything, testEventID, domain.UpdateEventInput{Capacity: &capacity}).
		Return(fmt.Errorf("%w: capacity cannot be lower than current participants (3)", domain.ErrValidation))

	_, err := svc.Update(context.Background(), testEventID, domain.UpdateEventInput{Capacity: &capacity})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_AddParticipant_Success(t *testing.T) {
	svc, eventRepo, _, userRepo, notifier := newEventService(t)

	user := &domain.User{ID: testUserID, Username: "alice", Role: domain.RoleParticipant}
	details := &domain.EventDetails{
		Event:        domain.Event{ID: testEventID, Name: "City Marathon", Capacity: 100},
		Participants: []domain.User{*user},
	}

	userRepo.EXPECT().GetByID(mock.Anything, testUserID).Return(user, nil)
	eventRepo.EXPECT().AddParticipant(mock.Anything, testEventID, testUserID).Return(nil)
	eventRepo.EXPECT().GetDetails(mock.Anything, testEventID).Return(details, nil)
	notifier.EXPECT().NotifyEnrolled(mock.Anything, user, &details.Event).Return()

	got, err := svc.AddParticipant(context.Background(), testEventID, testUserID)

	require.NoError(t, err)
	assert.Len(t, got.Participants, 1)
	assert.Equal(t, "alice", got.Participants[0].Username)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_AddParticipant_EventFull(t *testing.T) {
	svc, eventRepo, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, testUserID).Return(&domain.User{ID: testUserID}, nil)
	eventRepo.EXPECT().AddParticipant(mock.Anything, testEventID, testUserID).Return(domain.ErrEventFull)

	_, err := svc.AddParticipant(context.Background(), testEventID, testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestEventService_AddParticipant_AlreadyEnrolled(t *testing.T) {
	svc, eventRepo, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, testUserID).Return(&domain.User{ID: testUserID}, nil)
	eventRepo.EXPECT().AddParticipant(mock.Anything, testEventID, testUserID).Return(domain.ErrAlreadyEnrolled)

	_, err := svc.AddParticipant(context.Background(), testEventID, testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
}

func TestEventService_AddParticipant_UserNotFound(t *testing.T) {
	svc, _, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, testUserID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.AddParticipant(context.Background(), testEventID, testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEventService_AddParticipant_MalformedIDs(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	_, err := svc.AddParticipant(context.Background(), "bad", testUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.AddParticipant(context.Background(), testEventID, "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestEventService_RemoveParticipant_Success(t *testing.T) {
	svc, eventRepo, _, userRepo, notifier := newEventService(t)

	user := &domain.User{ID: testUserID, Username: "alice"}
	details := &domain.EventDetails{Event: domain.Event{ID: testEventID, Name: "City Marathon"}}

	userRepo.EXPECT().GetByID(mock.Anything, testUserID).Return(user, nil)
	eventRepo.EXPECT().RemoveParticipant(mock.Anything, testEventID, testUserID).Return(nil)
	eventRepo.EXPECT().GetDetails(mock.Anything, testEventID).Return(details, nil)
	notifier.EXPECT().NotifyUnenrolled(mock.Anything, user, &details.Event).Return()

	got, err := svc.RemoveParticipant(context.Background(), testEventID, testUserID)

	require.NoError(t, err)
	assert.Empty(t, got.Participants)

	time.Sleep(50 * time.Millisecond)
}

func TestEventService_RemoveParticipant_NotEnrolled(t *testing.T) {
	svc, eventRepo, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, testUserID).Return(&domain.User{ID: testUserID}, nil)
	eventRepo.EXPECT().RemoveParticipant(mock.Anything, testEventID, testUserID).Return(domain.ErrNotEnrolled)

	_, err := svc.RemoveParticipant(context.Background(), testEventID, testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEnrolled)
}

func TestEventService_AvailableSpots(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().Occupancy(mock.Anything, testEventID).Return(10, 7, nil)

	spots, err := svc.AvailableSpots(context.Background(), testEventID)

	require.NoError(t, err)
	assert.Equal(t, 3, spots)
}

func TestEventService_IsFull(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().Occupancy(mock.Anything, testEventID).Return(2, 2, nil)

	full, err := svc.IsFull(context.Background(), testEventID)

	require.NoError(t, err)
	assert.True(t, full)
}

func TestEventService_Roster(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	details := &domain.EventDetails{
		Event: domain.Event{ID: testEventID, Name: "City Marathon", SportType: "running"},
		Participants: []domain.User{
			{ID: testUserID, Username: "alice"},
			{ID: uuid.NewString(), Username: "bob"},
		},
	}
	eventRepo.EXPECT().GetDetails(mock.Anything, testEventID).Return(details, nil)

	roster, err := svc.Roster(context.Background(), testEventID)

	require.NoError(t, err)
	assert.Equal(t, testEventID, roster.EventID)
	assert.Equal(t, "City Marathon", roster.EventName)
	assert.Equal(t, 2, roster.ParticipantCount)
	assert.Len(t, roster.Participants, 2)
}

func TestEventService_ListByParticipant(t *testing.T) {
	svc, eventRepo, _, userRepo, _ := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, testUserID).Return(&domain.User{ID: testUserID}, nil)
	eventRepo.EXPECT().ListByParticipant(mock.Anything, testUserID).
		Return([]*domain.Event{{ID: testEventID}}, nil)

	events, err := svc.ListByParticipant(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_Delete_MalformedID(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	err := svc.Delete(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

// capacityFakeRepo enforces the capacity bound under a mutex the way the
// storage transaction does, so racing enrollments can be exercised without a
// database.
type capacityFakeRepo struct {
	mu       sync.Mutex
	capacity int
	enrolled map[string]struct{}
}

func newCapacityFakeRepo(capacity int) *capacityFakeRepo {
	return &capacityFakeRepo{capacity: capacity, enrolled: map[string]struct{}{}}
}

func (f *capacityFakeRepo) AddParticipant(_ context.Context, _, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.enrolled[userID]; ok {
		return domain.ErrAlreadyEnrolled
	}
	if len(f.enrolled) >= f.capacity {
		return domain.ErrEventFull
	}
	f.enrolled[userID] = struct{}{}
	return nil
}

func (f *capacityFakeRepo) GetDetails(_ context.Context, id string) (*domain.EventDetails, error) {
	return &domain.EventDetails{Event: domain.Event{ID: id, Capacity: f.capacity}}, nil
}

func (f *capacityFakeRepo) Create(context.Context, *domain.Event) error { return nil }
func (f *capacityFakeRepo) GetByID(context.Context, string) (*domain.Event, error) {
	return nil, domain.ErrEventNotFound
}
func (f *capacityFakeRepo) List(context.Context, domain.ListEventsInput) ([]*domain.EventDetails, int, error) {
	return nil, 0, nil
}
func (f *capacityFakeRepo) Update(context.Context, string, domain.UpdateEventInput) error { return nil }
func (f *capacityFakeRepo) Delete(context.Context, string) error                          { return nil }
func (f *capacityFakeRepo) RemoveParticipant(context.Context, string, string) error {
	return nil
}
func (f *capacityFakeRepo) Occupancy(context.Context, string) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.capacity, len(f.enrolled), nil
}
func (f *capacityFakeRepo) ListByParticipant(context.Context, string) ([]*domain.Event, error) {
	return nil, nil
}

func TestEventService_AddParticipant_RacingEnrollments(t *testing.T) {
	locationRepo := mocks.NewMockLocationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	repo := newCapacityFakeRepo(1)

	svc := NewEventService(repo, locationRepo, userRepo, notifier, newTestLogger(t))

	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleParticipant}, nil
		})
	notifier.EXPECT().NotifyEnrolled(mock.Anything, mock.Anything, mock.Anything).Return().Once()

	const racers = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		okCount  int
		fullErrs int
	)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddParticipant(context.Background(), testEventID, uuid.NewString())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				okCount++
			case errors.Is(err, domain.ErrEventFull):
				fullErrs++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, okCount, "exactly one racer must win the last spot")
	assert.Equal(t, racers-1, fullErrs)

	_, enrolled, err := repo.Occupancy(context.Background(), testEventID)
	require.NoError(t, err)
	assert.Equal(t, 1, enrolled)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
