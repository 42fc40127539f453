package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound — no booking with that id for that user.
var ErrNotFound = errors.New("booking not found")

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, b *Booking) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bookings (
			user_id, service_name, additional_services, price, location,
			status, scheduled_date, scheduled_time,
			vehicle_make, vehicle_model, vehicle_year,
			license_plate, vin, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		b.UserID,
		b.ServiceName,
		pq.Array(b.AdditionalServices),
		b.Price,
		b.Location,
		string(b.Status),
		b.ScheduledDate,
		b.ScheduledTime,
		b.VehicleMake,
		b.VehicleModel,
		b.VehicleYear,
		b.LicensePlate,
		b.VIN,
		b.Notes,
	).Scan(&id)
	return id, err
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, service_name, additional_services, price, location,
		       status, scheduled_date, scheduled_time,
		       vehicle_make, vehicle_model, vehicle_year,
		       license_plate, vin, notes,
		       extract(epoch from created_at)::bigint
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *repo) GetByID(ctx context.Context, userID string, id int64) (*Booking, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, service_name, additional_services, price, location,
		       status, scheduled_date, scheduled_time,
		       vehicle_make, vehicle_model, vehicle_year,
		       license_plate, vin, notes,
		       extract(epoch from created_at)::bigint
		FROM bookings
		WHERE user_id = $1 AND id = $2
	`, userID, id)

	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *repo) UpdateSchedule(ctx context.Context, userID string, id int64, date, timeOfDay string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET scheduled_date = $3, scheduled_time = $4
		WHERE user_id = $1 AND id = $2
	`, userID, id, date, timeOfDay)
	return affected(res, err)
}

func (r *repo) UpdateStatus(ctx context.Context, userID string, id int64, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET status = $3
		WHERE user_id = $1 AND id = $2
	`, userID, id, string(status))
	return affected(res, err)
}

func (r *repo) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM bookings
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	return affected(res, err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (*Booking, error) {
	var b Booking
	var status string
	if err := s.Scan(
		&b.ID,
		&b.UserID,
		&b.ServiceName,
		pq.Array(&b.AdditionalServices),
		&b.Price,
		&b.Location,
		&status,
		&b.ScheduledDate,
		&b.ScheduledTime,
		&b.VehicleMake,
		&b.VehicleModel,
		&b.VehicleYear,
		&b.LicensePlate,
		&b.VIN,
		&b.Notes,
		&b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.Status = Status(status)
	return &b, nil
}

func affected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
