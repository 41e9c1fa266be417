package service

import (
	"context"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/pricing"
	"rentit-backend/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, mobile, password string, role domain.Role) (*domain.User, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
}

type VehicleService interface {
	RegisterVehicle(ctx context.Context, ownerID int64, vehicle *domain.Vehicle) error
	UpdateVehicle(ctx context.Context, ownerID int64, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error)
	ListOwnerVehicles(ctx context.Context, ownerID int64) ([]domain.Vehicle, error)
}

type DriverService interface {
	RegisterDriver(ctx context.Context, driver *domain.Driver) error
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	// GetDriverByUser resolves the driver profile behind a login account.
	GetDriverByUser(ctx context.Context, userID int64) (*domain.Driver, error)
	SetAvailability(ctx context.Context, driverID int64, available bool) (*domain.Driver, error)
	ListAvailableDrivers(ctx context.Context) ([]domain.Driver, error)
}

// FareRequest carries the inputs of a fare estimate or a booking. Dates are
// YYYY-MM-DD, times are HH:MM, 24-hour.
type FareRequest struct {
	StartDate  string
	StartTime  string
	EndDate    string
	EndTime    string
	DistanceKm float64
	WithDriver bool
}

// BookingRequest is a renter's request to book a vehicle or hire a driver.
type BookingRequest struct {
	UserID          int64
	VehicleID       int64
	DriverID        int64
	PickupLocation  string
	DropoffLocation string
	Fare            FareRequest
}

type BookingService interface {
	EstimateFare(ctx context.Context, vehicleID int64, req FareRequest) (pricing.FareBreakdown, error)
	EstimateDriverHireFare(ctx context.Context, req FareRequest) (pricing.FareBreakdown, error)

	// CreateVehicleBooking confirms the booking immediately and marks the
	// vehicle Booked.
	CreateVehicleBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error)
	// CreateDriverHire creates a Pending booking awaiting the driver's
	// decision.
	CreateDriverHire(ctx context.Context, req BookingRequest) (*domain.Booking, error)
	RespondToHire(ctx context.Context, driverID, bookingID int64, decision domain.BookingDecision) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error)

	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListDriverHires(ctx context.Context, driverID int64, status domain.BookingStatus) ([]domain.Booking, error)
	ListOwnerBookings(ctx context.Context, ownerID int64) ([]domain.Booking, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, reviewerID, bookingID int64, rating int32, comment string) (*domain.Review, error)
	ListBookingReviews(ctx context.Context, bookingID int64) ([]domain.Review, error)
	ListOwnerReviews(ctx context.Context, ownerID int64) ([]domain.Review, error)
}

type ComplaintService interface {
	SubmitComplaint(ctx context.Context, reporterID, bookingID int64, subject, description string) (*domain.Complaint, error)
	ListComplaints(ctx context.Context) ([]domain.Complaint, error)
	ListReporterComplaints(ctx context.Context, reporterID int64) ([]domain.Complaint, error)
}

type AdminService interface {
	// SetVerification decides a pending vehicle or driver verification.
	SetVerification(ctx context.Context, adminID int64, kind domain.EntityKind, entityID int64, decision domain.VerificationStatus) error
	ListPendingVerifications(ctx context.Context) ([]domain.Vehicle, []domain.Driver, error)
	UpdateComplaintStatus(ctx context.Context, adminID, complaintID int64, status domain.ComplaintStatus) (*domain.Complaint, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
	ListAllVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListAllDrivers(ctx context.Context) ([]domain.Driver, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name, reference string, totalInr int64) error
	SendHireRequest(ctx context.Context, driverEmail, driverName, renterName, reference string) error
	SendHireDecision(ctx context.Context, email, name, reference string, accepted bool) error
	SendVerificationDecision(ctx context.Context, email, name, subject string, status domain.VerificationStatus) error
	SendInsuranceExpiryReminder(ctx context.Context, email, name, vehicle, expiresOn string) error
}
