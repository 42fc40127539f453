package booking

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler is the thin surface the chat UI calls after the assistant returns
// a complete propose_booking intent. Identity arrives as an explicit user_id
// from the trusted UI; auth lives in front of this service.
type Handler struct {
	repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

type createPayload struct {
	UserID             string   `json:"user_id"`
	ServiceName        string   `json:"service_name"`
	AdditionalServices []string `json:"additional_services"`
	Price              float64  `json:"price"`
	Location           string   `json:"location"`
	ScheduledDate      string   `json:"scheduled_date"`
	ScheduledTime      string   `json:"scheduled_time"`
	VehicleMake        *string  `json:"vehicle_make"`
	VehicleModel       *string  `json:"vehicle_model"`
	VehicleYear        *int     `json:"vehicle_year"`
	LicensePlate       *string  `json:"license_plate"`
	VIN                *string  `json:"vin"`
	Notes              *string  `json:"notes"`
}

// HandleCreate confirms a proposed booking.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if p.UserID == "" || p.ServiceName == "" || p.ScheduledDate == "" || p.ScheduledTime == "" {
		http.Error(w, "missing user_id, service_name, scheduled_date or scheduled_time", http.StatusBadRequest)
		return
	}

	b := &Booking{
		UserID:             p.UserID,
		ServiceName:        p.ServiceName,
		AdditionalServices: p.AdditionalServices,
		Price:              p.Price,
		Location:           p.Location,
		Status:             StatusConfirmed,
		ScheduledDate:      p.ScheduledDate,
		ScheduledTime:      p.ScheduledTime,
		VehicleMake:        p.VehicleMake,
		VehicleModel:       p.VehicleModel,
		VehicleYear:        p.VehicleYear,
		LicensePlate:       p.LicensePlate,
		VIN:                p.VIN,
		Notes:              p.Notes,
	}

	id, err := h.repo.Insert(r.Context(), b)
	if err != nil {
		log.Println("[booking] insert error:", err)
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}
	b.ID = id

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toJSON(b))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	bookings, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		log.Println("[booking] list error:", err)
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	out := make([]bookingJSON, 0, len(bookings))
	for i := range bookings {
		out = append(out, toJSON(&bookings[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"bookings": out})
}

type updatePayload struct {
	UserID        string  `json:"user_id"`
	ScheduledDate *string `json:"scheduled_date"`
	ScheduledTime *string `json:"scheduled_time"`
	Status        *string `json:"status"`
}

// HandleUpdate reschedules and/or changes status (cancel = status "cancelled").
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var p updatePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if p.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	if p.ScheduledDate != nil || p.ScheduledTime != nil {
		if p.ScheduledDate == nil || p.ScheduledTime == nil {
			http.Error(w, "scheduled_date and scheduled_time go together", http.StatusBadRequest)
			return
		}
		if err := h.repo.UpdateSchedule(r.Context(), p.UserID, id, *p.ScheduledDate, *p.ScheduledTime); err != nil {
			writeRepoError(w, err)
			return
		}
	}

	if p.Status != nil {
		status := Status(*p.Status)
		switch status {
		case StatusPending, StatusConfirmed, StatusCancelled:
		default:
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		if err := h.repo.UpdateStatus(r.Context(), p.UserID, id, status); err != nil {
			writeRepoError(w, err)
			return
		}
	}

	b, err := h.repo.GetByID(r.Context(), p.UserID, id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toJSON(b))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(r.Context(), userID, id); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeRepoError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "booking not found", http.StatusNotFound)
		return
	}
	log.Println("[booking] repo error:", err)
	http.Error(w, "processing error", http.StatusInternalServerError)
}

// bookingJSON is the wire shape, matching the column names the UI already
// uses.
type bookingJSON struct {
	ID                 int64    `json:"id"`
	UserID             string   `json:"user_id"`
	ServiceName        string   `json:"service_name"`
	AdditionalServices []string `json:"additional_services"`
	Price              float64  `json:"price"`
	Location           string   `json:"location"`
	Status             string   `json:"status"`
	ScheduledDate      string   `json:"scheduled_date"`
	ScheduledTime      string   `json:"scheduled_time"`
	VehicleMake        *string  `json:"vehicle_make,omitempty"`
	VehicleModel       *string  `json:"vehicle_model,omitempty"`
	VehicleYear        *int     `json:"vehicle_year,omitempty"`
	LicensePlate       *string  `json:"license_plate,omitempty"`
	VIN                *string  `json:"vin,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	CreatedAt          int64    `json:"created_at"`
}

func toJSON(b *Booking) bookingJSON {
	return bookingJSON{
		ID:                 b.ID,
		UserID:             b.UserID,
		ServiceName:        b.ServiceName,
		AdditionalServices: b.AdditionalServices,
		Price:              b.Price,
		Location:           b.Location,
		Status:             string(b.Status),
		ScheduledDate:      b.ScheduledDate,
		ScheduledTime:      b.ScheduledTime,
		VehicleMake:        b.VehicleMake,
		VehicleModel:       b.VehicleModel,
		VehicleYear:        b.VehicleYear,
		LicensePlate:       b.LicensePlate,
		VIN:                b.VIN,
		Notes:              b.Notes,
		CreatedAt:          b.CreatedAt,
	}
}
