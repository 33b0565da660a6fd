package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SportType   string    `json:"sport_type"`
	Date        time.Time `json:"date"`
	LocationID  string    `json:"location_id"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventDetails is an Event with its references resolved for the caller.
type EventDetails struct {
	Event        Event    `json:"event"`
	Location     Location `json:"location"`
	Participants []User   `json:"participants"`
}

// EventPage is one page of a paginated event listing.
type EventPage struct {
	Events     []*EventDetails `json:"events"`
	Count      int             `json:"count"`
	TotalPages int             `json:"total_pages"`
}

// EventRoster is the participant summary exposed to organizers.
type EventRoster struct {
	EventID          string    `json:"event_id"`
	EventName        string    `json:"event_name"`
	Description      string    `json:"description"`
	SportType        string    `json:"sport_type"`
	Date             time.Time `json:"date"`
	Participants     []User    `json:"participants"`
	ParticipantCount int       `json:"participant_count"`
}

type CreateEventInput struct {
	Name        string
	Description string
	SportType   string
	Date        time.Time
	LocationID  string
	Capacity    int
}

// UpdateEventInput carries a partial update; nil fields are left unchanged.
type UpdateEventInput struct {
	Name        *string
	Description *string
	SportType   *string
	Date        *time.Time
	LocationID  *string
	Capacity    *int
}

// IsEmpty reports whether the update would change nothing.
func (in UpdateEventInput) IsEmpty() bool {
	return in.Name == nil && in.Description == nil && in.SportType == nil &&
		in.Date == nil && in.LocationID == nil && in.Capacity == nil
}

type ListEventsInput struct {
	Page   int
	Limit  int
	Search string
}
