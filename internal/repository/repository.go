package repository

import (
	"context"

	"rentit-backend/internal/domain"
)

// Implementations return domain.ErrNotFound for missing ids,
// domain.ErrDuplicateReview for a second review on the same
// (booking, reviewer) pair, and domain.ErrVersionConflict when an
// optimistic booking update loses a race.

// Store bundles the per-entity repositories a backend needs. Both the
// postgres and the in-memory demo implementations satisfy it.
type Store interface {
	Users() UserRepository
	Vehicles() VehicleRepository
	Drivers() DriverRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Complaints() ComplaintRepository
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// VehicleFilter narrows the renter-facing inventory query. Zero values
// match everything.
type VehicleFilter struct {
	Type     domain.VehicleType
	Location string
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	// ListAvailable returns only vehicles that are Verified and Available.
	ListAvailable(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	// GetByUser resolves a driver profile from its login account.
	GetByUser(ctx context.Context, userID int64) (*domain.Driver, error)
	Update(ctx context.Context, driver *domain.Driver) error
	// ListAvailable returns only drivers that are Verified and available.
	ListAvailable(ctx context.Context) ([]domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// Update applies the booking's fields where the stored version still
	// matches booking.Version, then increments the version.
	Update(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListByDriver(ctx context.Context, driverID int64, status domain.BookingStatus) ([]domain.Booking, error)
	// ListByVehicleOwner returns bookings whose vehicle belongs to the owner.
	ListByVehicleOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type ReviewRepository interface {
	// Create enforces at-most-one review per (booking, reviewer) at the
	// storage layer.
	Create(ctx context.Context, review *domain.Review) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Review, error)
	// ListByVehicleOwner returns reviews attached to bookings of the
	// owner's vehicles.
	ListByVehicleOwner(ctx context.Context, ownerID int64) ([]domain.Review, error)
}

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	Update(ctx context.Context, complaint *domain.Complaint) error
	List(ctx context.Context) ([]domain.Complaint, error)
	ListByReporter(ctx context.Context, reporterID int64) ([]domain.Complaint, error)
}
