package postgres

import (
	"context"
	"testing"

	"rentit-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "reference", "user_id", "vehicle_id", "driver_id", "start_date",
		"start_time", "end_date", "end_time", "total_cost_inr", "status", "pickup_location",
		"dropoff_location", "distance_km", "with_driver", "version", "created_on", "updated_on"})
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	vehicleID := int64(7)
	booking := &domain.Booking{
		Reference:       "RNT-1234",
		UserID:          3,
		VehicleID:       &vehicleID,
		StartDate:       "2024-08-01",
		StartTime:       "10:00",
		EndDate:         "2024-08-03",
		EndTime:         "10:00",
		TotalCostInr:    3600,
		Status:          domain.BookingStatusConfirmed,
		PickupLocation:  "Chennai",
		DropoffLocation: "Bangalore",
		DistanceKm:      35,
	}

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(booking.Reference, booking.UserID, booking.VehicleID, booking.DriverID,
			booking.StartDate, booking.StartTime, booking.EndDate, booking.EndTime,
			booking.TotalCostInr, booking.Status, booking.PickupLocation, booking.DropoffLocation,
			booking.DistanceKm, booking.WithDriver, int32(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err = repo.Create(ctx, booking)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), booking.ID)
	assert.Equal(t, int32(1), booking.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := bookingRows().
			AddRow(1, "RNT-1234", 3, 7, nil, "2024-08-01", "10:00", "2024-08-03", "10:00",
				3600, "Confirmed", "Chennai", "Bangalore", 35.0, false, 1, "2024-08-01", "2024-08-01")

		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		b, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), b.ID)
		assert.NotNil(t, b.VehicleID)
		assert.Equal(t, int64(7), *b.VehicleID)
		assert.Nil(t, b.DriverID)
		assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	})

	t.Run("Missing id maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs(int64(99)).
			WillReturnRows(bookingRows())

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	booking := &domain.Booking{
		ID:        5,
		Status:    domain.BookingStatusConfirmed,
		StartDate: "2024-08-01", StartTime: "10:00",
		EndDate: "2024-08-03", EndTime: "10:00",
		TotalCostInr: 3600,
		Version:      2,
	}

	t.Run("Success bumps version", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET").
			WithArgs(booking.Status, booking.TotalCostInr, booking.StartDate, booking.StartTime,
				booking.EndDate, booking.EndTime, booking.DistanceKm, sqlmock.AnyArg(),
				booking.ID, int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, booking)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), booking.Version)
	})

	t.Run("Stale version maps to ErrVersionConflict", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		// The row exists, so the zero-row update means a lost race.
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs(booking.ID).
			WillReturnRows(bookingRows().
				AddRow(5, "RNT-1234", 3, nil, 9, "2024-08-01", "10:00", "2024-08-03", "10:00",
					3600, "Cancelled", "Chennai", "Bangalore", 0.0, true, 4, "2024-08-01", "2024-08-02"))

		err := repo.Update(ctx, booking)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	})

	t.Run("Missing row maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs(booking.ID).
			WillReturnRows(bookingRows())

		err := repo.Update(ctx, booking)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ListByDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	rows := bookingRows().
		AddRow(2, "RNT-2222", 3, nil, 9, "2024-08-05", "09:00", "2024-08-06", "18:00",
			1600, "Pending", "Pune", "Mumbai", 0.0, true, 1, "2024-08-04", "2024-08-04")

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE driver_id = \\$1 AND status = \\$2").
		WithArgs(int64(9), domain.BookingStatusPending).
		WillReturnRows(rows)

	bookings, err := repo.ListByDriver(ctx, 9, domain.BookingStatusPending)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, domain.BookingStatusPending, bookings[0].Status)
	assert.Nil(t, bookings[0].VehicleID)
	assert.NotNil(t, bookings[0].DriverID)
}
