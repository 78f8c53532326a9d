package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusCompleted, StatusCancelled, StatusRefunded} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("Enviada").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusPending.CanTransitionTo(StatusRefunded))

	assert.True(t, StatusCompleted.CanTransitionTo(StatusRefunded))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCompleted), "completion effects must run at most once")
	assert.False(t, StatusCompleted.CanTransitionTo(StatusPending))

	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
	assert.False(t, StatusRefunded.CanTransitionTo(StatusCompleted))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusRefunded.Terminal())
}
