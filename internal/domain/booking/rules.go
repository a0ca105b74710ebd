// Package booking holds the pure scheduling rules shared by the appointment
// usecase. Every function here is free of I/O so the rules can be tested
// without a database.
package booking

import (
	"errors"
	"time"

	"rhu-patient-portal/internal/domain/entity"
)

var (
	ErrRHUWalkInOnly      = errors.New("RHU appointments are walk-in only and cannot be booked online")
	ErrBarangayRequired   = errors.New("a barangay is required for BHS appointments")
	ErrPastDate           = errors.New("appointment date cannot be in the past")
	ErrAlreadyBookedOnDay = errors.New("you already have an appointment on this date; only one appointment per day is allowed")
	ErrSlotFull           = errors.New("the selected time slot is fully booked")
	ErrNotCancellable     = errors.New("appointment cannot be cancelled")
)

// Request carries the fields of a booking attempt that the rules inspect.
type Request struct {
	Location   entity.AppointmentLocation
	BarangayID *int64
	Date       time.Time
	Time       string
}

// ValidateRequest applies the field-level booking rules:
// self-service RHU bookings are rejected outright, BHS bookings must name a
// barangay, and the date must not be in the past. Rules that need counts from
// the database (one-per-day, slot capacity) are checked separately.
func ValidateRequest(req Request, today time.Time) error {
	if req.Location == entity.LocationRHU {
		return ErrRHUWalkInOnly
	}
	if req.Location == entity.LocationBHS && (req.BarangayID == nil || *req.BarangayID == 0) {
		return ErrBarangayRequired
	}
	if DateOnly(req.Date).Before(DateOnly(today)) {
		return ErrPastDate
	}
	return nil
}

// CheckDailyLimit enforces the one-appointment-per-day rule given the number
// of non-terminal appointments the patient already holds on the date.
func CheckDailyLimit(existing int64) error {
	if existing > 0 {
		return ErrAlreadyBookedOnDay
	}
	return nil
}

// CheckSlotCapacity enforces the per-slot cap for a concrete (date, time,
// location) triple. The unassigned-time sentinel is exempt: those rows wait
// for an admin to pick a slot.
func CheckSlotCapacity(appointmentTime string, booked int64, capacity int) error {
	if appointmentTime == entity.TimeUnassigned || appointmentTime == "" {
		return nil
	}
	if booked >= int64(capacity) {
		return ErrSlotFull
	}
	return nil
}

// CanCancel reports whether the patient may cancel the appointment: the
// status must still be open and the date must not have passed. Ownership is
// enforced at the repository layer.
func CanCancel(a *entity.Appointment, today time.Time) error {
	if !a.IsCancellable() {
		return ErrNotCancellable
	}
	if DateOnly(a.AppointmentDate).Before(DateOnly(today)) {
		return ErrNotCancellable
	}
	return nil
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
