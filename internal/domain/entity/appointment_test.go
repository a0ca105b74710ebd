package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionAppointment(t *testing.T) {
	allowed := []struct{ from, to AppointmentStatus }{
		{AppointmentStatusPending, AppointmentStatusConfirmed},
		{AppointmentStatusPending, AppointmentStatusCancelled},
		{AppointmentStatusPending, AppointmentStatusRescheduled},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted},
		{AppointmentStatusConfirmed, AppointmentStatusNoShow},
		{AppointmentStatusRescheduled, AppointmentStatusConfirmed},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransitionAppointment(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to AppointmentStatus }{
		{AppointmentStatusCompleted, AppointmentStatusPending},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed},
		{AppointmentStatusNoShow, AppointmentStatusPending},
		{AppointmentStatusConfirmed, AppointmentStatusPending},
		{AppointmentStatusPending, AppointmentStatusCompleted},
	}
	for _, tr := range denied {
		assert.False(t, CanTransitionAppointment(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}

func TestAppointmentDisplayID(t *testing.T) {
	assert.Equal(t, "APT-000042", (&Appointment{ID: 42}).DisplayID())
	assert.Equal(t, "APT-123456", (&Appointment{ID: 123456}).DisplayID())
	assert.Equal(t, "APT-1234567", (&Appointment{ID: 1234567}).DisplayID())
}

func TestAppointmentIsTerminal(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentStatusCancelled}).IsTerminal())
	assert.True(t, (&Appointment{Status: AppointmentStatusNoShow}).IsTerminal())
	assert.True(t, (&Appointment{Status: AppointmentStatusCompleted}).IsTerminal())
	assert.False(t, (&Appointment{Status: AppointmentStatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: AppointmentStatusRescheduled}).IsTerminal())
}

func TestAppointmentHasAssignedTime(t *testing.T) {
	assert.False(t, (&Appointment{AppointmentTime: TimeUnassigned}).HasAssignedTime())
	assert.False(t, (&Appointment{AppointmentTime: ""}).HasAssignedTime())
	assert.True(t, (&Appointment{AppointmentTime: "09:30:00"}).HasAssignedTime())
}
