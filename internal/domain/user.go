package domain

import "time"

type Role string

const (
	RoleParticipant Role = "participant"
	RoleOrganizer   Role = "organizer"
)

type User struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is what the external auth service vouches for. It is mirrored
// into the local user store on first sight.
type Identity struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type Credentials struct {
	Username string
	Password string
}

type Registration struct {
	Fullname string
	Email    string
	Username string
	Password string
}

// AuthSession is the token plus identity returned by the auth service.
type AuthSession struct {
	Token    string   `json:"token"`
	Identity Identity `json:"user"`
}
