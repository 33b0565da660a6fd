package dto

import (
	"time"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

type LocationResponse struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type EventResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	SportType    string           `json:"sportType"`
	Date         string           `json:"date"`
	Location     LocationResponse `json:"location"`
	Capacity     int              `json:"capacity"`
	Participants []UserResponse   `json:"participants"`
	CreatedAt    string           `json:"createdAt"`
	UpdatedAt    string           `json:"updatedAt"`
}

type EventPageResponse struct {
	Data       []EventResponse `json:"data"`
	Count      int             `json:"count"`
	TotalPages int             `json:"totalPages"`
}

type RosterResponse struct {
	EventID          string         `json:"eventId"`
	EventName        string         `json:"eventName"`
	Description      string         `json:"description"`
	SportType        string         `json:"sportType"`
	Date             string         `json:"date"`
	Participants     []UserResponse `json:"participants"`
	ParticipantCount int            `json:"participantCount"`
}

type ParticipantsResponse struct {
	Participants []UserResponse `json:"participants"`
	Count        int            `json:"count"`
}

type TicketResponse struct {
	ID                 string  `json:"id"`
	EventID            string  `json:"event"`
	UserID             string  `json:"user"`
	Status             string  `json:"status"`
	TicketNumber       string  `json:"ticketNumber"`
	IsCheckedIn        bool    `json:"isCheckedIn"`
	CheckedInAt        *string `json:"checkedInAt,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

type TicketListResponse struct {
	Data  []TicketResponse `json:"data"`
	Count int              `json:"count"`
}

func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		ID:      l.ID,
		Address: l.Address,
		City:    l.City,
		Country: l.Country,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Fullname: u.Fullname,
		Email:    u.Email,
		Username: u.Username,
		Role:     string(u.Role),
	}
}

func toUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, ToUserResponse(&users[i]))
	}
	return res
}

func ToEventResponse(d *domain.EventDetails) EventResponse {
	return EventResponse{
		ID:           d.Event.ID,
		Name:         d.Event.Name,
		Description:  d.Event.Description,
		SportType:    d.Event.SportType,
		Date:         d.Event.Date.Format(time.RFC3339),
		Location:     ToLocationResponse(&d.Location),
		Capacity:     d.Event.Capacity,
		Participants: toUserResponses(d.Participants),
		CreatedAt:    d.Event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    d.Event.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventPageResponse(p *domain.EventPage) EventPageResponse {
	events := make([]EventResponse, 0, len(p.Events))
	for _, d := range p.Events {
		events = append(events, ToEventResponse(d))
	}
	return EventPageResponse{
		Data:       events,
		Count:      p.Count,
		TotalPages: p.TotalPages,
	}
}

func ToRosterResponse(r *domain.EventRoster) RosterResponse {
	return RosterResponse{
		EventID:          r.EventID,
		EventName:        r.EventName,
		Description:      r.Description,
		SportType:        r.SportType,
		Date:             r.Date.Format(time.RFC3339),
		Participants:     toUserResponses(r.Participants),
		ParticipantCount: r.ParticipantCount,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:                 t.ID,
		EventID:            t.EventID,
		UserID:             t.UserID,
		Status:             string(t.Status),
		TicketNumber:       t.TicketNumber,
		IsCheckedIn:        t.IsCheckedIn,
		CheckedInAt:        formatTimePtr(t.CheckedInAt),
		CancellationReason: t.CancellationReason,
		CancelledAt:        formatTimePtr(t.CancelledAt),
		CreatedAt:          t.CreatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
