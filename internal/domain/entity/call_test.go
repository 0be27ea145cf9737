package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallStatus_IsValid(t *testing.T) {
	assert.True(t, CallStatusPending.IsValid())
	assert.True(t, CallStatusAcknowledged.IsValid())
	assert.True(t, CallStatusCompleted.IsValid())
	assert.False(t, CallStatus("cancelled").IsValid())
	assert.False(t, CallStatus("").IsValid())
}

func TestCallStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    CallStatus
		to      CallStatus
		allowed bool
	}{
		{"pending to acknowledged", CallStatusPending, CallStatusAcknowledged, true},
		{"pending to completed skips acknowledged", CallStatusPending, CallStatusCompleted, true},
		{"acknowledged to completed", CallStatusAcknowledged, CallStatusCompleted, true},
		{"acknowledged back to pending", CallStatusAcknowledged, CallStatusPending, false},
		{"completed back to acknowledged", CallStatusCompleted, CallStatusAcknowledged, false},
		{"completed back to pending", CallStatusCompleted, CallStatusPending, false},
		{"pending to pending", CallStatusPending, CallStatusPending, false},
		{"completed to completed", CallStatusCompleted, CallStatusCompleted, false},
		{"unknown source", CallStatus("cancelled"), CallStatusCompleted, false},
		{"unknown target", CallStatusPending, CallStatus("cancelled"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
