package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionConsultation(t *testing.T) {
	assert.True(t, CanTransitionConsultation(ConsultationStatusPending, ConsultationStatusInProgress))
	assert.True(t, CanTransitionConsultation(ConsultationStatusPending, ConsultationStatusCancelled))
	assert.True(t, CanTransitionConsultation(ConsultationStatusInProgress, ConsultationStatusCompleted))
	assert.True(t, CanTransitionConsultation(ConsultationStatusInProgress, ConsultationStatusCancelled))

	assert.False(t, CanTransitionConsultation(ConsultationStatusCompleted, ConsultationStatusPending))
	assert.False(t, CanTransitionConsultation(ConsultationStatusCancelled, ConsultationStatusInProgress))
	assert.False(t, CanTransitionConsultation(ConsultationStatusPending, ConsultationStatusCompleted))
}

func TestConsultationNumber(t *testing.T) {
	assert.Equal(t, "CONS-2025-0001", ConsultationNumber(2025, 1))
	assert.Equal(t, "CONS-2025-0042", ConsultationNumber(2025, 42))
	assert.Equal(t, "CONS-2026-10000", ConsultationNumber(2026, 10000))
}

func TestConsultationIsPending(t *testing.T) {
	assert.True(t, (&Consultation{Status: ConsultationStatusPending}).IsPending())
	assert.False(t, (&Consultation{Status: ConsultationStatusInProgress}).IsPending())
	assert.False(t, (&Consultation{Status: ConsultationStatusCancelled}).IsPending())
}
