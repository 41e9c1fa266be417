package postgres

import (
	"database/sql"

	"rentit-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles all postgres-backed repositories behind one value.
type Store struct {
	db         *sql.DB
	users      repository.UserRepository
	vehicles   repository.VehicleRepository
	drivers    repository.DriverRepository
	bookings   repository.BookingRepository
	reviews    repository.ReviewRepository
	complaints repository.ComplaintRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:         db,
		users:      NewUserRepository(db),
		vehicles:   NewVehicleRepository(db),
		drivers:    NewDriverRepository(db),
		bookings:   NewBookingRepository(db),
		reviews:    NewReviewRepository(db),
		complaints: NewComplaintRepository(db),
	}
}

func (s *Store) Users() repository.UserRepository           { return s.users }
func (s *Store) Vehicles() repository.VehicleRepository     { return s.vehicles }
func (s *Store) Drivers() repository.DriverRepository       { return s.drivers }
func (s *Store) Bookings() repository.BookingRepository     { return s.bookings }
func (s *Store) Reviews() repository.ReviewRepository       { return s.reviews }
func (s *Store) Complaints() repository.ComplaintRepository { return s.complaints }

// today is the date stamp written into created_on / updated_on columns,
// matching the YYYY-MM-DD convention the entities carry.
const dateLayout = "2006-01-02"
