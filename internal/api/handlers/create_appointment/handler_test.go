package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

var (
	testProviderID = uuid.MustParse("7f2b3c44-9c1a-4e05-8f2e-3f3c3f6a1b2d")
	testUserID     = uuid.MustParse("0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error

	gotReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// newRouter собирает роутер с auth middleware, как в main
func newRouter(uc *fakeUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, body interface{}, userID string) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	date := time.Date(2025, time.October, 15, 13, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &createAppointment.Response{
			ID:         uuid.New(),
			ProviderID: testProviderID,
			UserID:     testUserID,
			Date:       date,
			CreatedAt:  date,
			UpdatedAt:  date,
		},
	}
	router := newRouter(uc)

	rec := doRequest(t, router, CreateAppointmentRequest{
		ProviderID: testProviderID.String(),
		Date:       "2025-10-15T13:25:00Z",
	}, testUserID.String())

	require.Equal(t, http.StatusCreated, rec.Code)

	// ID пользователя берется из заголовка, а не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, testUserID, uc.gotReq.UserID)
	assert.Equal(t, testProviderID, uc.gotReq.ProviderID)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testProviderID.String(), resp.ProviderID)
	assert.Equal(t, "2025-10-15T13:00:00Z", resp.Date)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	rec := doRequest(t, router, CreateAppointmentRequest{
		ProviderID: testProviderID.String(),
		Date:       "2025-10-15T13:00:00Z",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidUserHeader(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	rec := doRequest(t, router, CreateAppointmentRequest{
		ProviderID: testProviderID.String(),
		Date:       "2025-10-15T13:00:00Z",
	}, "not-a-uuid")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidProviderID(t *testing.T) {
	uc := &fakeUseCase{}
	router := newRouter(uc)

	rec := doRequest(t, router, CreateAppointmentRequest{
		ProviderID: "not-a-uuid",
		Date:       "2025-10-15T13:00:00Z",
	}, testUserID.String())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &fakeUseCase{}
	router := newRouter(uc)

	rec := doRequest(t, router, CreateAppointmentRequest{
		ProviderID: testProviderID.String(),
		Date:       "15.10.2025 13:00",
	}, testUserID.String())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot already booked", createAppointment.ErrSlotAlreadyBooked, http.StatusConflict},
		{"past date", createAppointment.ErrPastDate, http.StatusBadRequest},
		{"self booking", createAppointment.ErrSelfBooking, http.StatusBadRequest},
		{"outside business hours", createAppointment.ErrOutsideBusinessHours, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"storage failure", createAppointment.ErrStorage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err})

			rec := doRequest(t, router, CreateAppointmentRequest{
				ProviderID: testProviderID.String(),
				Date:       "2025-10-15T13:00:00Z",
			}, testUserID.String())

			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}
