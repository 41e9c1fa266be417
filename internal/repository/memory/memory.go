// Package memory provides a process-local implementation of the repository
// interfaces, used by tests and the demo seed. Ids are monotonic and owned
// by the store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type reviewKey struct {
	bookingID  int64
	reviewerID int64
}

type Store struct {
	mu sync.RWMutex

	nextID     int64
	users      map[int64]*domain.User
	vehicles   map[int64]*domain.Vehicle
	drivers    map[int64]*domain.Driver
	bookings   map[int64]*domain.Booking
	reviews    map[int64]*domain.Review
	reviewKeys map[reviewKey]int64
	complaints map[int64]*domain.Complaint
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int64]*domain.User),
		vehicles:   make(map[int64]*domain.Vehicle),
		drivers:    make(map[int64]*domain.Driver),
		bookings:   make(map[int64]*domain.Booking),
		reviews:    make(map[int64]*domain.Review),
		reviewKeys: make(map[reviewKey]int64),
		complaints: make(map[int64]*domain.Complaint),
	}
}

func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

func today() string {
	return time.Now().Format(dateLayout)
}

// --- users ---

type userStore struct{ s *Store }

func (s *Store) Users() repository.UserRepository { return userStore{s} }

func (us userStore) Create(ctx context.Context, u *domain.User) error {
	s := us.s
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.allocID()
	u.CreatedOn = today()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (us userStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s := us.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (us userStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s := us.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// --- vehicles ---

type vehicleStore struct{ s *Store }

func (s *Store) Vehicles() repository.VehicleRepository { return vehicleStore{s} }

func (vs vehicleStore) Create(ctx context.Context, v *domain.Vehicle) error {
	s := vs.s
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.allocID()
	v.CreatedOn = today()
	v.UpdatedOn = v.CreatedOn
	cp := *v
	s.vehicles[v.ID] = &cp
	return nil
}

func (vs vehicleStore) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	s := vs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (vs vehicleStore) Update(ctx context.Context, v *domain.Vehicle) error {
	s := vs.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[v.ID]; !ok {
		return domain.ErrNotFound
	}
	v.UpdatedOn = today()
	cp := *v
	s.vehicles[v.ID] = &cp
	return nil
}

func (vs vehicleStore) ListAvailable(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error) {
	s := vs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Vehicle
	for _, v := range s.vehicles {
		if !v.Rentable() {
			continue
		}
		if filter.Type != "" && v.Type != filter.Type {
			continue
		}
		if filter.Location != "" && v.Location != filter.Location {
			continue
		}
		out = append(out, *v)
	}
	sortByID(out, func(v domain.Vehicle) int64 { return v.ID })
	return out, nil
}

func (vs vehicleStore) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	s := vs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Vehicle
	for _, v := range s.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sortByID(out, func(v domain.Vehicle) int64 { return v.ID })
	return out, nil
}

func (vs vehicleStore) List(ctx context.Context) ([]domain.Vehicle, error) {
	s := vs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Vehicle
	for _, v := range s.vehicles {
		out = append(out, *v)
	}
	sortByID(out, func(v domain.Vehicle) int64 { return v.ID })
	return out, nil
}

// --- drivers ---

type driverStore struct{ s *Store }

func (s *Store) Drivers() repository.DriverRepository { return driverStore{s} }

func (ds driverStore) Create(ctx context.Context, d *domain.Driver) error {
	s := ds.s
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.allocID()
	d.CreatedOn = today()
	d.UpdatedOn = d.CreatedOn
	cp := *d
	s.drivers[d.ID] = &cp
	return nil
}

func (ds driverStore) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	s := ds.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drivers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (ds driverStore) GetByUser(ctx context.Context, userID int64) (*domain.Driver, error) {
	s := ds.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.drivers {
		if d.UserID == userID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (ds driverStore) Update(ctx context.Context, d *domain.Driver) error {
	s := ds.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drivers[d.ID]; !ok {
		return domain.ErrNotFound
	}
	d.UpdatedOn = today()
	cp := *d
	s.drivers[d.ID] = &cp
	return nil
}

func (ds driverStore) ListAvailable(ctx context.Context) ([]domain.Driver, error) {
	s := ds.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Driver
	for _, d := range s.drivers {
		if d.Hireable() {
			out = append(out, *d)
		}
	}
	sortByID(out, func(d domain.Driver) int64 { return d.ID })
	return out, nil
}

func (ds driverStore) List(ctx context.Context) ([]domain.Driver, error) {
	s := ds.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Driver
	for _, d := range s.drivers {
		out = append(out, *d)
	}
	sortByID(out, func(d domain.Driver) int64 { return d.ID })
	return out, nil
}

// --- bookings ---

type bookingStore struct{ s *Store }

func (s *Store) Bookings() repository.BookingRepository { return bookingStore{s} }

func (bs bookingStore) Create(ctx context.Context, b *domain.Booking) error {
	s := bs.s
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.allocID()
	b.Version = 1
	b.CreatedOn = today()
	b.UpdatedOn = b.CreatedOn
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (bs bookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	s := bs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (bs bookingStore) Update(ctx context.Context, b *domain.Booking) error {
	s := bs.s
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.bookings[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != b.Version {
		return domain.ErrVersionConflict
	}
	b.Version++
	b.UpdatedOn = today()
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (bs bookingStore) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return bs.list(func(b *domain.Booking) bool { return b.UserID == userID })
}

func (bs bookingStore) ListByDriver(ctx context.Context, driverID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return bs.list(func(b *domain.Booking) bool {
		if b.DriverID == nil || *b.DriverID != driverID {
			return false
		}
		return status == "" || b.Status == status
	})
}

func (bs bookingStore) ListByVehicleOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	s := bs.s
	s.mu.RLock()
	owned := make(map[int64]bool)
	for _, v := range s.vehicles {
		if v.OwnerID == ownerID {
			owned[v.ID] = true
		}
	}
	s.mu.RUnlock()
	return bs.list(func(b *domain.Booking) bool {
		return b.VehicleID != nil && owned[*b.VehicleID]
	})
}

func (bs bookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	return bs.list(func(*domain.Booking) bool { return true })
}

func (bs bookingStore) list(match func(*domain.Booking) bool) ([]domain.Booking, error) {
	s := bs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Booking
	for _, b := range s.bookings {
		if match(b) {
			out = append(out, *b)
		}
	}
	sortByID(out, func(b domain.Booking) int64 { return b.ID })
	return out, nil
}

// --- reviews ---

type reviewStore struct{ s *Store }

func (s *Store) Reviews() repository.ReviewRepository { return reviewStore{s} }

func (rs reviewStore) Create(ctx context.Context, r *domain.Review) error {
	s := rs.s
	s.mu.Lock()
	defer s.mu.Unlock()
	key := reviewKey{bookingID: r.BookingID, reviewerID: r.ReviewerID}
	if _, exists := s.reviewKeys[key]; exists {
		return domain.ErrDuplicateReview
	}
	r.ID = s.allocID()
	r.CreatedOn = today()
	cp := *r
	s.reviews[r.ID] = &cp
	s.reviewKeys[key] = r.ID
	return nil
}

func (rs reviewStore) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Review, error) {
	s := rs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Review
	for _, r := range s.reviews {
		if r.BookingID == bookingID {
			out = append(out, *r)
		}
	}
	sortByID(out, func(r domain.Review) int64 { return r.ID })
	return out, nil
}

func (rs reviewStore) ListByVehicleOwner(ctx context.Context, ownerID int64) ([]domain.Review, error) {
	s := rs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	ownedBookings := make(map[int64]bool)
	for _, b := range s.bookings {
		if b.VehicleID == nil {
			continue
		}
		if v, ok := s.vehicles[*b.VehicleID]; ok && v.OwnerID == ownerID {
			ownedBookings[b.ID] = true
		}
	}
	var out []domain.Review
	for _, r := range s.reviews {
		if ownedBookings[r.BookingID] {
			out = append(out, *r)
		}
	}
	sortByID(out, func(r domain.Review) int64 { return r.ID })
	return out, nil
}

// --- complaints ---

type complaintStore struct{ s *Store }

func (s *Store) Complaints() repository.ComplaintRepository { return complaintStore{s} }

func (cs complaintStore) Create(ctx context.Context, c *domain.Complaint) error {
	s := cs.s
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.allocID()
	c.CreatedOn = today()
	c.UpdatedOn = c.CreatedOn
	cp := *c
	s.complaints[c.ID] = &cp
	return nil
}

func (cs complaintStore) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	s := cs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.complaints[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (cs complaintStore) Update(ctx context.Context, c *domain.Complaint) error {
	s := cs.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.complaints[c.ID]; !ok {
		return domain.ErrNotFound
	}
	c.UpdatedOn = today()
	cp := *c
	s.complaints[c.ID] = &cp
	return nil
}

func (cs complaintStore) List(ctx context.Context) ([]domain.Complaint, error) {
	return cs.list(func(*domain.Complaint) bool { return true })
}

func (cs complaintStore) ListByReporter(ctx context.Context, reporterID int64) ([]domain.Complaint, error) {
	return cs.list(func(c *domain.Complaint) bool { return c.ReporterID == reporterID })
}

func (cs complaintStore) list(match func(*domain.Complaint) bool) ([]domain.Complaint, error) {
	s := cs.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Complaint
	for _, c := range s.complaints {
		if match(c) {
			out = append(out, *c)
		}
	}
	sortByID(out, func(c domain.Complaint) int64 { return c.ID })
	return out, nil
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
