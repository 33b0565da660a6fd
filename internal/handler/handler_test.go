package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/handler/dto"
	hmocks "github.com/Ismail-Lafhiel/-evento/internal/handler/mocks"
)

const (
	eventID    = "2f9d9f4e-4a3b-4c57-9e47-8a5cf32f9f10"
	userID     = "7c1a9e0d-6a0f-4d2a-b1f5-3f6f0d9f2b11"
	locationID = "c2b9a1d4-8e3f-4f6a-9c0d-5e7b2a4f8c12"
	ticketID   = "9d4f2c1a-7b6e-4a3d-8c5f-1e0b9a7d4f13"
)

type testServices struct {
	events    *hmocks.MockEventSvc
	locations *hmocks.MockLocationSvc
	users     *hmocks.MockUserSvc
	tickets   *hmocks.MockTicketSvc
	auth      *hmocks.MockAuthSvc
}

func setupRouter(t *testing.T) (testServices, http.Handler) {
	t.Helper()

	svcs := testServices{
		events:    hmocks.NewMockEventSvc(t),
		locations: hmocks.NewMockLocationSvc(t),
		users:     hmocks.NewMockUserSvc(t),
		tickets:   hmocks.NewMockTicketSvc(t),
		auth:      hmocks.NewMockAuthSvc(t),
	}

	h := NewHandler(svcs.events, svcs.locations, svcs.users, svcs.tickets, svcs.auth)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/users/login", h.Login)
		api.POST("/users/register", h.Register)
		api.GET("/users/participants", h.ListParticipants)
		api.GET("/users/:id/events", h.ListUserEvents)

		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.GET("/events/:id/participants", h.GetEventRoster)
		api.POST("/events/:id/participants/:userId", h.AddParticipant)
		api.DELETE("/events/:id/participants/:userId", h.RemoveParticipant)
		api.GET("/events/:id/available-spots", h.GetAvailableSpots)

		api.POST("/locations", h.CreateLocation)
		api.GET("/locations", h.ListLocations)
		api.GET("/locations/:id", h.GetLocation)
		api.PUT("/locations/:id", h.UpdateLocation)
		api.DELETE("/locations/:id", h.DeleteLocation)

		api.POST("/tickets", h.CreateTicket)
		api.GET("/tickets", h.ListTickets)
		api.GET("/tickets/:id", h.GetTicket)
		api.PUT("/tickets/:id", h.UpdateTicket)
		api.DELETE("/tickets/:id", h.DeleteTicket)
	}

	return svcs, r
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	svcs, r := setupRouter(t)

	date := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	details := &domain.EventDetails{
		Event: domain.Event{
			ID:         eventID,
			Name:       "City Marathon",
			SportType:  "running",
			Date:       date,
			LocationID: locationID,
			Capacity:   100,
		},
		Location: domain.Location{ID: locationID, City: "Lisbon"},
	}

	svcs.events.EXPECT().Create(mock.Anything, mock.Anything).Return(details, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:        "City Marathon",
		Description: "Annual 42km run through the old town",
		SportType:   "running",
		Date:        date.Format(time.RFC3339),
		LocationID:  locationID,
		Capacity:    100,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.StatusCode)

	var event dto.EventResponse
	require.NoError(t, json.Unmarshal(env.Data, &event))
	assert.Equal(t, "City Marathon", event.Name)
	assert.Equal(t, "Lisbon", event.Location.City)
}

func TestHandler_CreateEvent_BindingError(t *testing.T) {
	_, r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/events", ginext.H{"name": "X"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:        "City Marathon",
		Description: "Annual 42km run through the old town",
		SportType:   "running",
		Date:        "tomorrow-ish",
		LocationID:  locationID,
		Capacity:    100,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "RFC3339")
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().Get(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w, env := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
}

func TestHandler_GetEvent_MalformedID(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().Get(mock.Anything, "42").Return(nil, domain.ErrInvalidID)

	w, _ := doJSON(t, r, http.MethodGet, "/api/events/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_PassesQueryParams(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().
		List(mock.Anything, domain.ListEventsInput{Page: 2, Limit: 5, Search: "marathon"}).
		Return(&domain.EventPage{Count: 12, TotalPages: 3}, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/events?page=2&limit=5&search=marathon", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var page dto.EventPageResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 12, page.Count)
	assert.Equal(t, 3, page.TotalPages)
}

func TestHandler_AddParticipant_Success(t *testing.T) {
	svcs, r := setupRouter(t)

	details := &domain.EventDetails{
		Event:        domain.Event{ID: eventID, Name: "City Marathon"},
		Participants: []domain.User{{ID: userID, Username: "alice"}},
	}
	svcs.events.EXPECT().AddParticipant(mock.Anything, eventID, userID).Return(details, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/participants/"+userID, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var event dto.EventResponse
	require.NoError(t, json.Unmarshal(env.Data, &event))
	require.Len(t, event.Participants, 1)
	assert.Equal(t, "alice", event.Participants[0].Username)
}

func TestHandler_AddParticipant_EventFull(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().AddParticipant(mock.Anything, eventID, userID).Return(nil, domain.ErrEventFull)

	w, env := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/participants/"+userID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.ErrEventFull.Error(), env.Message)
}

func TestHandler_AddParticipant_AlreadyEnrolled(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().AddParticipant(mock.Anything, eventID, userID).Return(nil, domain.ErrAlreadyEnrolled)

	w, _ := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/participants/"+userID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RemoveParticipant_NotEnrolled(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().RemoveParticipant(mock.Anything, eventID, userID).Return(nil, domain.ErrNotEnrolled)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID+"/participants/"+userID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetAvailableSpots(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().AvailableSpots(mock.Anything, eventID).Return(7, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/available-spots", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		AvailableSpots int `json:"availableSpots"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 7, data.AvailableSpots)
}

func TestHandler_GetEventRoster(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().Roster(mock.Anything, eventID).Return(&domain.EventRoster{
		EventID:          eventID,
		EventName:        "City Marathon",
		Participants:     []domain.User{{ID: userID, Username: "alice"}},
		ParticipantCount: 1,
	}, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/participants", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var roster dto.RosterResponse
	require.NoError(t, json.Unmarshal(env.Data, &roster))
	assert.Equal(t, 1, roster.ParticipantCount)
}

func TestHandler_DeleteEvent_InternalError(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().Delete(mock.Anything, eventID).Return(errors.New("connection reset"))

	w, env := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", env.Message)
}

// --- Locations ---

func TestHandler_CreateLocation_Success(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.locations.EXPECT().Create(mock.Anything, domain.CreateLocationInput{
		Address: "Rua Augusta 1",
		City:    "Lisbon",
		Country: "Portugal",
	}).Return(&domain.Location{ID: locationID, Address: "Rua Augusta 1", City: "Lisbon", Country: "Portugal"}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/locations", dto.CreateLocationRequest{
		Address: "Rua Augusta 1",
		City:    "Lisbon",
		Country: "Portugal",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var location dto.LocationResponse
	require.NoError(t, json.Unmarshal(env.Data, &location))
	assert.Equal(t, locationID, location.ID)
}

func TestHandler_DeleteLocation_InUse(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.locations.EXPECT().Delete(mock.Anything, locationID).
		Return(domain.ErrValidation)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/locations/"+locationID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Tickets ---

func TestHandler_CreateTicket_Success(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.tickets.EXPECT().Create(mock.Anything, domain.CreateTicketInput{
		EventID: eventID,
		UserID:  userID,
	}).Return(&domain.Ticket{
		ID:           ticketID,
		EventID:      eventID,
		UserID:       userID,
		Status:       domain.TicketStatusPending,
		TicketNumber: "TIX-1700000000000-042",
	}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/tickets", dto.CreateTicketRequest{
		EventID: eventID,
		UserID:  userID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var ticket dto.TicketResponse
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.Equal(t, "PENDING", ticket.Status)
	assert.Equal(t, "TIX-1700000000000-042", ticket.TicketNumber)
}

func TestHandler_UpdateTicket_InvalidTransition(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.tickets.EXPECT().Update(mock.Anything, ticketID, mock.Anything).
		Return(nil, domain.ErrInvalidTransition)

	status := "CONFIRMED"
	w, _ := doJSON(t, r, http.MethodPut, "/api/tickets/"+ticketID, dto.UpdateTicketRequest{Status: &status})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateTicket_UnknownStatusRejectedByBinding(t *testing.T) {
	_, r := setupRouter(t)

	status := "ARCHIVED"
	w, _ := doJSON(t, r, http.MethodPut, "/api/tickets/"+ticketID, dto.UpdateTicketRequest{Status: &status})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateTicket_CheckIn(t *testing.T) {
	svcs, r := setupRouter(t)

	now := time.Now()
	svcs.tickets.EXPECT().Update(mock.Anything, ticketID, domain.UpdateTicketInput{CheckIn: true}).
		Return(&domain.Ticket{
			ID:          ticketID,
			Status:      domain.TicketStatusConfirmed,
			IsCheckedIn: true,
			CheckedInAt: &now,
		}, nil)

	w, env := doJSON(t, r, http.MethodPut, "/api/tickets/"+ticketID, dto.UpdateTicketRequest{CheckIn: true})

	assert.Equal(t, http.StatusOK, w.Code)

	var ticket dto.TicketResponse
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.True(t, ticket.IsCheckedIn)
	assert.NotNil(t, ticket.CheckedInAt)
}

// --- Users ---

func TestHandler_Login_Success(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.auth.EXPECT().Login(mock.Anything, domain.Credentials{Username: "alice", Password: "s3cretpass"}).
		Return(&domain.AuthSession{Token: "jwt-token", Identity: domain.Identity{Username: "alice"}}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/users/login", dto.LoginRequest{
		Username: "alice",
		Password: "s3cretpass",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var session domain.AuthSession
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "jwt-token", session.Token)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	w, _ := doJSON(t, r, http.MethodPost, "/api/users/login", dto.LoginRequest{
		Username: "alice",
		Password: "wrong-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w, _ := doJSON(t, r, http.MethodPost, "/api/users/register", dto.RegisterRequest{
		Fullname: "Alice Smith",
		Email:    "alice@example.com",
		Username: "alice",
		Password: "s3cretpass",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListParticipants(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.users.EXPECT().Participants(mock.Anything).Return([]*domain.User{
		{ID: userID, Username: "alice", Role: domain.RoleParticipant},
	}, 1, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/users/participants", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var data dto.ParticipantsResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Count)
	require.Len(t, data.Participants, 1)
	assert.Equal(t, "alice", data.Participants[0].Username)
}

func TestHandler_ListUserEvents(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().ListByParticipant(mock.Anything, userID).
		Return([]*domain.Event{{ID: eventID, Name: "City Marathon"}}, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Data  []domain.Event `json:"data"`
		Count int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Count)
}
