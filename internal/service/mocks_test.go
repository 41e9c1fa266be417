package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) ListAvailable(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockDriverRepo
type MockDriverRepo struct {
	mock.Mock
}

func (m *MockDriverRepo) Create(ctx context.Context, driver *domain.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}
func (m *MockDriverRepo) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) GetByUser(ctx context.Context, userID int64) (*domain.Driver, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) Update(ctx context.Context, driver *domain.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}
func (m *MockDriverRepo) ListAvailable(ctx context.Context) ([]domain.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) List(ctx context.Context) ([]domain.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Driver), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByDriver(ctx context.Context, driverID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, driverID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByVehicleOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Review, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) ListByVehicleOwner(ctx context.Context, ownerID int64) ([]domain.Review, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

// MockComplaintRepo
type MockComplaintRepo struct {
	mock.Mock
}

func (m *MockComplaintRepo) Create(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}
func (m *MockComplaintRepo) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}
func (m *MockComplaintRepo) Update(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}
func (m *MockComplaintRepo) List(ctx context.Context) ([]domain.Complaint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}
func (m *MockComplaintRepo) ListByReporter(ctx context.Context, reporterID int64) ([]domain.Complaint, error) {
	args := m.Called(ctx, reporterID)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name, reference string, totalInr int64) error {
	args := m.Called(ctx, email, name, reference, totalInr)
	return args.Error(0)
}
func (m *MockEmailService) SendHireRequest(ctx context.Context, driverEmail, driverName, renterName, reference string) error {
	args := m.Called(ctx, driverEmail, driverName, renterName, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendHireDecision(ctx context.Context, email, name, reference string, accepted bool) error {
	args := m.Called(ctx, email, name, reference, accepted)
	return args.Error(0)
}
func (m *MockEmailService) SendVerificationDecision(ctx context.Context, email, name, subject string, status domain.VerificationStatus) error {
	args := m.Called(ctx, email, name, subject, status)
	return args.Error(0)
}
func (m *MockEmailService) SendInsuranceExpiryReminder(ctx context.Context, email, name, vehicle, expiresOn string) error {
	args := m.Called(ctx, email, name, vehicle, expiresOn)
	return args.Error(0)
}
