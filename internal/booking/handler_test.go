package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fakeRepo struct {
	inserted *Booking
	bookings map[int64]*Booking
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[int64]*Booking{}, nextID: 1}
}

func (f *fakeRepo) Insert(_ context.Context, b *Booking) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *b
	stored.ID = id
	f.bookings[id] = &stored
	f.inserted = &stored
	return id, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, userID string, id int64) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) UpdateSchedule(_ context.Context, userID string, id int64, date, timeOfDay string) error {
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID {
		return ErrNotFound
	}
	b.ScheduledDate, b.ScheduledTime = date, timeOfDay
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, userID string, id int64, status Status) error {
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, userID string, id int64) error {
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID {
		return ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func newRouter(repo Repo) *chi.Mux {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(repo))
	return r
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo()
	r := newRouter(repo)

	body := `{
		"user_id": "u-1",
		"service_name": "Oil Change",
		"additional_services": ["Tire Rotation & Balance"],
		"price": 120,
		"location": "Downtown Service Center",
		"scheduled_date": "2026-09-08",
		"scheduled_time": "09:00 AM",
		"vehicle_make": "Honda",
		"vehicle_model": "Civic",
		"vehicle_year": 2019
	}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if repo.inserted == nil {
		t.Fatal("nothing inserted")
	}
	if repo.inserted.Status != StatusConfirmed {
		t.Errorf("status = %s, want confirmed", repo.inserted.Status)
	}
	if repo.inserted.VehicleMake == nil || *repo.inserted.VehicleMake != "Honda" {
		t.Errorf("vehicle make lost: %+v", repo.inserted)
	}

	var out struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil || out.ID == 0 {
		t.Errorf("response lacks id: %s", rec.Body.String())
	}
}

func TestCreateBookingRejectsIncomplete(t *testing.T) {
	r := newRouter(newFakeRepo())

	// same required trio the assistant guard enforces
	body := `{"user_id": "u-1", "service_name": "Oil Change", "scheduled_time": "09:00 AM"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListBookingsRequiresUser(t *testing.T) {
	r := newRouter(newFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListBookingsForUser(t *testing.T) {
	repo := newFakeRepo()
	_, _ = repo.Insert(context.Background(), &Booking{UserID: "u-1", ServiceName: "Oil Change"})
	_, _ = repo.Insert(context.Background(), &Booking{UserID: "u-2", ServiceName: "Detailing"})
	r := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/bookings?user_id=u-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		Bookings []bookingJSON `json:"bookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(out.Bookings) != 1 || out.Bookings[0].ServiceName != "Oil Change" {
		t.Errorf("got %+v", out.Bookings)
	}
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo()
	id, _ := repo.Insert(context.Background(), &Booking{UserID: "u-1", ServiceName: "Oil Change", Status: StatusConfirmed})
	r := newRouter(repo)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/1", strings.NewReader(`{"user_id":"u-1","status":"cancelled"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if repo.bookings[id].Status != StatusCancelled {
		t.Errorf("status = %s, want cancelled", repo.bookings[id].Status)
	}
}

func TestRescheduleBooking(t *testing.T) {
	repo := newFakeRepo()
	id, _ := repo.Insert(context.Background(), &Booking{
		UserID: "u-1", ServiceName: "Oil Change",
		ScheduledDate: "2026-09-08", ScheduledTime: "09:00 AM",
	})
	r := newRouter(repo)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/1",
		strings.NewReader(`{"user_id":"u-1","scheduled_date":"2026-09-10","scheduled_time":"02:00 PM"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	b := repo.bookings[id]
	if b.ScheduledDate != "2026-09-10" || b.ScheduledTime != "02:00 PM" {
		t.Errorf("schedule not updated: %+v", b)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	_, _ = repo.Insert(context.Background(), &Booking{UserID: "u-1"})
	r := newRouter(repo)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/1", strings.NewReader(`{"user_id":"u-1","status":"finalized"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteBooking(t *testing.T) {
	repo := newFakeRepo()
	_, _ = repo.Insert(context.Background(), &Booking{UserID: "u-1"})
	r := newRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/bookings/1?user_id=u-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	// another user cannot touch it once it's gone, and 404s surface
	req = httptest.NewRequest(http.MethodDelete, "/bookings/1?user_id=u-1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
