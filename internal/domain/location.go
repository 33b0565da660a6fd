package domain

import "time"

type Location struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateLocationInput struct {
	Address string
	City    string
	Country string
}

type UpdateLocationInput struct {
	Address *string
	City    *string
	Country *string
}

func (in UpdateLocationInput) IsEmpty() bool {
	return in.Address == nil && in.City == nil && in.Country == nil
}
