package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrInvalidID        = errors.New("invalid id format")
)

var (
	ErrEventFull       = errors.New("event has reached maximum capacity")
	ErrAlreadyEnrolled = errors.New("user is already participating in this event")
	ErrNotEnrolled     = errors.New("user is not participating in this event")
)

var (
	ErrInvalidTransition = errors.New("illegal ticket status transition")
	ErrAlreadyCheckedIn  = errors.New("ticket is already checked in")
	ErrNotConfirmed      = errors.New("only confirmed tickets can be checked in")
	ErrDuplicateTicket   = errors.New("ticket number already exists")
)

var (
	ErrEmailTaken = errors.New("email or username is already taken")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("missing or invalid token")
	ErrForbidden    = errors.New("access denied, organizers only")
)
