package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/domain/booking"
	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAppointmentUsecase returns canned values so handler behavior can be
// tested without a database.
type stubAppointmentUsecase struct {
	bookResponse   *dto.AppointmentResponse
	bookErr        error
	cancelResponse *dto.AppointmentResponse
	cancelErr      error
	getResponse    *dto.AppointmentResponse
	getErr         error
	listResponse   *dto.AppointmentListResponse
	listErr        error
}

func (s *stubAppointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.bookResponse, s.bookErr
}

func (s *stubAppointmentUsecase) Cancel(ctx context.Context, id int64, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.cancelResponse, s.cancelErr
}

func (s *stubAppointmentUsecase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return s.getResponse, s.getErr
}

func (s *stubAppointmentUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return s.listResponse, s.listErr
}

func (s *stubAppointmentUsecase) ListBarangays(ctx context.Context) ([]dto.BarangayResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) ListServiceTypes(ctx context.Context) ([]dto.ServiceTypeResponse, error) {
	return nil, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func validBookPayload() []byte {
	barangayID := int64(3)
	payload, _ := json.Marshal(dto.BookAppointmentRequest{
		ServiceTypeID:   1,
		Location:        "BHS",
		BarangayID:      &barangayID,
		AppointmentDate: "2030-06-01",
		AppointmentTime: "09:00:00",
		Reason:          "Follow-up checkup",
	})
	return payload
}

func TestBookAppointmentSuccess(t *testing.T) {
	stub := &stubAppointmentUsecase{
		bookResponse: &dto.AppointmentResponse{ID: 7, DisplayID: "APT-000007", Status: "pending"},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(validBookPayload()))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "APT-000007", data["display_id"])
}

func TestBookAppointmentValidation(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	payload, _ := json.Marshal(dto.BookAppointmentRequest{Location: "CLINIC"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestBookAppointmentRuleErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "RHU walk-in only", err: booking.ErrRHUWalkInOnly, wantCode: http.StatusBadRequest},
		{name: "barangay required", err: booking.ErrBarangayRequired, wantCode: http.StatusBadRequest},
		{name: "past date", err: booking.ErrPastDate, wantCode: http.StatusBadRequest},
		{name: "already booked on day", err: booking.ErrAlreadyBookedOnDay, wantCode: http.StatusConflict},
		{name: "slot full", err: booking.ErrSlotFull, wantCode: http.StatusConflict},
		{name: "service type missing", err: usecase.ErrServiceTypeNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointmentUsecase{bookErr: tt.err}, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(validBookPayload()))
			rec := httptest.NewRecorder()
			h.Book(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestBookAppointmentOnePerDayMessage(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{bookErr: booking.ErrAlreadyBookedOnDay}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(validBookPayload()))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Contains(t, body["message"], "one appointment per day")
}

func TestCancelAppointmentNotFound(t *testing.T) {
	// A missing appointment and someone else's appointment look identical.
	h := NewAppointmentHandler(&stubAppointmentUsecase{cancelErr: usecase.ErrAppointmentNotFound}, validator.NewValidator())

	payload, _ := json.Marshal(dto.CancelAppointmentRequest{Reason: "cannot attend"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/99/cancel", bytes.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	h.Cancel(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelAppointmentNotCancellable(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{cancelErr: booking.ErrNotCancellable}, validator.NewValidator())

	payload, _ := json.Marshal(dto.CancelAppointmentRequest{Reason: "cannot attend"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/5/cancel", bytes.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	h.Cancel(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetAppointmentInvalidID(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAppointments(t *testing.T) {
	stub := &stubAppointmentUsecase{
		listResponse: &dto.AppointmentListResponse{
			Appointments: []dto.AppointmentResponse{{ID: 1}, {ID: 2}},
			Total:        2,
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
}
