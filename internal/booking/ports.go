package booking

import "context"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking — one service appointment, keyed by user and id.
type Booking struct {
	ID                 int64
	UserID             string
	ServiceName        string
	AdditionalServices []string
	Price              float64
	Location           string
	Status             Status
	ScheduledDate      string // YYYY-MM-DD
	ScheduledTime      string // e.g. 09:00 AM
	VehicleMake        *string
	VehicleModel       *string
	VehicleYear        *int
	LicensePlate       *string
	VIN                *string
	Notes              *string
	CreatedAt          int64
}

// Repo — persistence
type Repo interface {
	Insert(ctx context.Context, b *Booking) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	GetByID(ctx context.Context, userID string, id int64) (*Booking, error)
	UpdateSchedule(ctx context.Context, userID string, id int64, date, timeOfDay string) error
	UpdateStatus(ctx context.Context, userID string, id int64, status Status) error
	Delete(ctx context.Context, userID string, id int64) error
}
