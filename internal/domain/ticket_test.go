package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from TicketStatus
		to   TicketStatus
		ok   bool
	}{
		{TicketStatusPending, TicketStatusConfirmed, true},
		{TicketStatusPending, TicketStatusCancelled, true},
		{TicketStatusConfirmed, TicketStatusCancelled, true},
		{TicketStatusConfirmed, TicketStatusPending, false},
		{TicketStatusCancelled, TicketStatusPending, false},
		{TicketStatusCancelled, TicketStatusConfirmed, false},
		{TicketStatusPending, TicketStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketStatus_Valid(t *testing.T) {
	assert.True(t, TicketStatusPending.Valid())
	assert.True(t, TicketStatusConfirmed.Valid())
	assert.True(t, TicketStatusCancelled.Valid())
	assert.False(t, TicketStatus("ARCHIVED").Valid())
}

func TestNewTicketNumber_Format(t *testing.T) {
	assert.Regexp(t, `^TIX-\d+-\d{3}$`, NewTicketNumber())
}
