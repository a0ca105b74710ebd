package booking

import (
	"testing"
	"time"

	"rhu-patient-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateRequest(t *testing.T) {
	today := date(2025, time.March, 10)
	barangayID := int64(3)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "RHU bookings are walk-in only",
			req:     Request{Location: entity.LocationRHU, Date: date(2025, time.March, 12)},
			wantErr: ErrRHUWalkInOnly,
		},
		{
			name:    "BHS booking without barangay",
			req:     Request{Location: entity.LocationBHS, Date: date(2025, time.March, 12)},
			wantErr: ErrBarangayRequired,
		},
		{
			name:    "past date rejected",
			req:     Request{Location: entity.LocationBHS, BarangayID: &barangayID, Date: date(2025, time.March, 9)},
			wantErr: ErrPastDate,
		},
		{
			name: "same-day booking allowed",
			req:  Request{Location: entity.LocationBHS, BarangayID: &barangayID, Date: today},
		},
		{
			name: "future BHS booking allowed",
			req:  Request{Location: entity.LocationBHS, BarangayID: &barangayID, Date: date(2025, time.April, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequestZeroBarangayID(t *testing.T) {
	zero := int64(0)
	err := ValidateRequest(Request{
		Location:   entity.LocationBHS,
		BarangayID: &zero,
		Date:       date(2025, time.March, 12),
	}, date(2025, time.March, 10))
	assert.ErrorIs(t, err, ErrBarangayRequired)
}

func TestCheckDailyLimit(t *testing.T) {
	assert.NoError(t, CheckDailyLimit(0))
	assert.ErrorIs(t, CheckDailyLimit(1), ErrAlreadyBookedOnDay)
	assert.ErrorIs(t, CheckDailyLimit(3), ErrAlreadyBookedOnDay)
}

func TestCheckSlotCapacity(t *testing.T) {
	assert.NoError(t, CheckSlotCapacity("09:00:00", 2, 3))
	assert.ErrorIs(t, CheckSlotCapacity("09:00:00", 3, 3), ErrSlotFull)
	assert.ErrorIs(t, CheckSlotCapacity("09:00:00", 5, 3), ErrSlotFull)
}

func TestCheckSlotCapacityUnassignedTimeExempt(t *testing.T) {
	// Rows waiting for an admin-assigned time do not occupy a slot.
	assert.NoError(t, CheckSlotCapacity(entity.TimeUnassigned, 100, 3))
	assert.NoError(t, CheckSlotCapacity("", 100, 3))
}

func TestCanCancel(t *testing.T) {
	today := date(2025, time.March, 10)

	tests := []struct {
		name    string
		status  entity.AppointmentStatus
		date    time.Time
		wantErr error
	}{
		{name: "pending future", status: entity.AppointmentStatusPending, date: date(2025, time.March, 12)},
		{name: "confirmed same day", status: entity.AppointmentStatusConfirmed, date: today},
		{name: "rescheduled future", status: entity.AppointmentStatusRescheduled, date: date(2025, time.March, 20)},
		{name: "completed", status: entity.AppointmentStatusCompleted, date: date(2025, time.March, 12), wantErr: ErrNotCancellable},
		{name: "cancelled", status: entity.AppointmentStatusCancelled, date: date(2025, time.March, 12), wantErr: ErrNotCancellable},
		{name: "no-show", status: entity.AppointmentStatusNoShow, date: date(2025, time.March, 12), wantErr: ErrNotCancellable},
		{name: "pending but past", status: entity.AppointmentStatusPending, date: date(2025, time.March, 9), wantErr: ErrNotCancellable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := &entity.Appointment{Status: tt.status, AppointmentDate: tt.date}
			err := CanCancel(appointment, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, time.March, 10, 17, 42, 3, 99, time.UTC)
	assert.Equal(t, date(2025, time.March, 10), DateOnly(ts))
}
