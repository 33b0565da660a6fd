package dto

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"required,min=10,max=500"`
	SportType   string `json:"sportType" binding:"required"`
	Date        string `json:"date" binding:"required"`
	LocationID  string `json:"location" binding:"required,uuid"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,min=10,max=500"`
	SportType   *string `json:"sportType"`
	Date        *string `json:"date"`
	LocationID  *string `json:"location" binding:"omitempty,uuid"`
	Capacity    *int    `json:"capacity" binding:"omitempty,gt=0"`
}

type CreateLocationRequest struct {
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type UpdateLocationRequest struct {
	Address *string `json:"address"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

type CreateTicketRequest struct {
	EventID string `json:"event" binding:"required,uuid"`
	UserID  string `json:"user" binding:"required,uuid"`
}

type UpdateTicketRequest struct {
	Status             *string `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
	CancellationReason *string `json:"cancellationReason"`
	CheckIn            bool    `json:"checkIn"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
