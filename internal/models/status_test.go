package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChefStatus(t *testing.T) {
	s, err := ParseChefStatus("active")
	require.NoError(t, err)
	assert.Equal(t, ChefActive, s)

	s, err = ParseChefStatus("inactive")
	require.NoError(t, err)
	assert.Equal(t, ChefInactive, s)

	_, err = ParseChefStatus("retired")
	assert.Error(t, err)

	_, err = ParseChefStatus("")
	assert.Error(t, err)
}

func TestParseEventStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "completed", "cancelled"} {
		s, err := ParseEventStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, EventStatus(raw), s)
	}

	_, err := ParseEventStatus("rejected")
	assert.Error(t, err)
}

func TestEventStatusTransitions(t *testing.T) {
	cases := []struct {
		from    EventStatus
		to      EventStatus
		allowed bool
	}{
		{EventPending, EventConfirmed, true},
		{EventPending, EventCancelled, true},
		{EventPending, EventCompleted, false},
		{EventConfirmed, EventCompleted, true},
		{EventConfirmed, EventCancelled, false},
		{EventConfirmed, EventPending, false},
		{EventCompleted, EventPending, false},
		{EventCompleted, EventConfirmed, false},
		{EventCancelled, EventPending, false},
		{EventCancelled, EventConfirmed, false},
	}

	for _, c := range cases {
		assert.Equalf(t, c.allowed, c.from.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}
