package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) IncIntegrationRequest(target, outcome string) {}

type fakeSelection struct {
	selection *domain.BookingSelection
	missing   bool
	resets    int
}

func (f *fakeSelection) Get(_ context.Context, _ string) (*domain.BookingSelection, error) {
	if f.missing {
		return nil, selection.ErrSessionNotFound
	}
	return f.selection, nil
}

func (f *fakeSelection) SetContact(_ context.Context, _ string, contact domain.ContactDetails) (*domain.BookingSelection, error) {
	if f.missing {
		return nil, selection.ErrSessionNotFound
	}
	f.selection.Contact = contact
	return f.selection, nil
}

func (f *fakeSelection) Reset(_ context.Context, _ string) (*domain.BookingSelection, error) {
	if f.missing {
		return nil, selection.ErrSessionNotFound
	}
	f.resets++
	f.selection.Clear(time.Now())
	return f.selection, nil
}

type fakeBookingClient struct {
	result  *bookingservice.CreateBookingResult
	err     error
	calls   int
	lastReq *bookingservice.CreateBookingRequest
}

func (f *fakeBookingClient) CreateBooking(_ context.Context, req *bookingservice.CreateBookingRequest) (*bookingservice.CreateBookingResult, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func completeSelection() *domain.BookingSelection {
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	label := types.TimeString("14:00")
	sel := domain.NewBookingSelection("sess-1", time.Now())
	sel.Step = domain.StepDetails
	sel.Service = &domain.Service{
		ID:              1,
		Slug:            "haircut",
		CategorySlug:    "hair",
		Name:            domain.LocalizedText{"en": "Haircut", "de": "Haarschnitt"},
		DurationMinutes: 45,
		Price:           35,
	}
	sel.CategorySlug = &sel.Service.CategorySlug
	sel.Date = &date
	sel.Time = &label
	return sel
}

func validRequest() Request {
	return Request{
		SessionID: "sess-1",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+4915112345678",
	}
}

func TestExecute_Success(t *testing.T) {
	sel := &fakeSelection{selection: completeSelection()}
	client := &fakeBookingClient{
		result: &bookingservice.CreateBookingResult{Success: true, ConfirmationID: "B-1"},
	}
	uc := NewUsecase(sel, client, nopMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "B-1", resp.ConfirmationID)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, types.TimeString("14:00"), resp.Time)

	// Снапшот payload
	assert.Equal(t, int64(1), client.lastReq.ServiceID)
	assert.Equal(t, "haircut", client.lastReq.ServiceSlug)
	assert.Equal(t, 45, client.lastReq.DurationMinutes)
	assert.Equal(t, 35.0, client.lastReq.Price)
	assert.Equal(t, "2025-03-12", client.lastReq.Date)
	assert.Equal(t, "14:00", client.lastReq.Time)
	assert.Equal(t, "Jane Doe", client.lastReq.Name)

	// Успех сбрасывает сессию на шаг 1
	assert.Equal(t, 1, sel.resets)
	assert.Equal(t, domain.StepServiceSelection, sel.selection.Step)
}

func TestExecute_LocalizedServiceName(t *testing.T) {
	sel := &fakeSelection{selection: completeSelection()}
	client := &fakeBookingClient{
		result: &bookingservice.CreateBookingResult{Success: true, ConfirmationID: "B-2"},
	}
	uc := NewUsecase(sel, client, nopMetrics{}, nopLogger{})

	req := validRequest()
	req.Language = "de"
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Haarschnitt", resp.ServiceName)
}

func TestExecute_IncompleteSelectionNoNetworkCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.BookingSelection)
	}{
		{"no service", func(s *domain.BookingSelection) { s.Service = nil }},
		{"no date", func(s *domain.BookingSelection) { s.Date = nil }},
		{"no time", func(s *domain.BookingSelection) { s.Time = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selState := completeSelection()
			tt.mutate(selState)
			sel := &fakeSelection{selection: selState}
			client := &fakeBookingClient{}
			uc := NewUsecase(sel, client, nopMetrics{}, nopLogger{})

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrIncompleteBooking)
			assert.Equal(t, 0, client.calls)
			assert.Equal(t, 0, sel.resets)
		})
	}
}

func TestExecute_InvalidContactNoNetworkCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.Name = "" }},
		{"empty email", func(r *Request) { r.Email = "" }},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"email without domain dot", func(r *Request) { r.Email = "a@b" }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &fakeSelection{selection: completeSelection()}
			client := &fakeBookingClient{}
			uc := NewUsecase(sel, client, nopMetrics{}, nopLogger{})

			req := validRequest()
			tt.mutate(&req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidContact)
			assert.Equal(t, 0, client.calls)
		})
	}
}

func TestExecute_TransportFailurePreservesSelection(t *testing.T) {
	sel := &fakeSelection{selection: completeSelection()}
	client := &fakeBookingClient{err: bookingservice.ErrUnavailable}
	uc := NewUsecase(sel, client, nopMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingFailed)

	// Без автоматических повторов, выбор и контакты сохранены
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 0, sel.resets)
	assert.NotNil(t, sel.selection.Service)
	assert.Equal(t, "Jane Doe", sel.selection.Contact.Name)
}

func TestExecute_BusinessRejection(t *testing.T) {
	sel := &fakeSelection{selection: completeSelection()}
	client := &fakeBookingClient{
		result: &bookingservice.CreateBookingResult{Success: false, Message: "слот уже занят"},
	}
	uc := NewUsecase(sel, client, nopMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingRejected)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "слот уже занят", rejected.Message)

	// Отказ не сбрасывает сессию
	assert.Equal(t, 0, sel.resets)
	assert.NotNil(t, sel.selection.Service)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc := NewUsecase(&fakeSelection{missing: true}, &fakeBookingClient{}, nopMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{SessionID: "gone"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
