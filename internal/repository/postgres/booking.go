package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, reference, user_id, vehicle_id, driver_id, start_date, start_time, end_date,
	end_time, total_cost_inr, status, pickup_location, dropoff_location, distance_km, with_driver,
	version, created_on, updated_on`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.Reference, &b.UserID, &b.VehicleID, &b.DriverID, &b.StartDate, &b.StartTime,
		&b.EndDate, &b.EndTime, &b.TotalCostInr, &b.Status, &b.PickupLocation, &b.DropoffLocation,
		&b.DistanceKm, &b.WithDriver, &b.Version, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (reference, user_id, vehicle_id, driver_id, start_date, start_time,
	            end_date, end_time, total_cost_inr, status, pickup_location, dropoff_location,
	            distance_km, with_driver, version, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          RETURNING id`
	now := time.Now().Format(dateLayout)
	b.CreatedOn = now
	b.UpdatedOn = now
	b.Version = 1
	return r.db.QueryRowContext(ctx, query, b.Reference, b.UserID, b.VehicleID, b.DriverID, b.StartDate,
		b.StartTime, b.EndDate, b.EndTime, b.TotalCostInr, b.Status, b.PickupLocation,
		b.DropoffLocation, b.DistanceKm, b.WithDriver, b.Version, b.CreatedOn, b.UpdatedOn).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update writes the booking only if the stored version still matches
// booking.Version. A zero-row update against an existing row means another
// writer got there first.
func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, total_cost_inr=$2, start_date=$3, start_time=$4, end_date=$5,
	            end_time=$6, distance_km=$7, version=version+1, updated_on=$8
	          WHERE id=$9 AND version=$10`
	updatedOn := time.Now().Format(dateLayout)
	res, err := r.db.ExecContext(ctx, query, b.Status, b.TotalCostInr, b.StartDate, b.StartTime,
		b.EndDate, b.EndTime, b.DistanceKm, updatedOn, b.ID, b.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, b.ID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrVersionConflict
	}
	b.Version++
	b.UpdatedOn = updatedOn
	return nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY id DESC`
	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) ListByDriver(ctx context.Context, driverID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE driver_id = $1`
	args := []any{driverID}
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}
	query += " ORDER BY id DESC"
	return r.queryBookings(ctx, query, args...)
}

func (r *bookingRepository) ListByVehicleOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	query := `SELECT b.id, b.reference, b.user_id, b.vehicle_id, b.driver_id, b.start_date, b.start_time,
	            b.end_date, b.end_time, b.total_cost_inr, b.status, b.pickup_location, b.dropoff_location,
	            b.distance_km, b.with_driver, b.version, b.created_on, b.updated_on
	          FROM bookings b
	          JOIN vehicles v ON v.id = b.vehicle_id
	          WHERE v.owner_id = $1
	          ORDER BY b.id DESC`
	return r.queryBookings(ctx, query, ownerID)
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY id DESC`
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
