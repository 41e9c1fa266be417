package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/pricing"
	"rentit-backend/internal/repository"
)

const dateTimeLayout = "2006-01-02T15:04"

type bookingService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	driverRepo  repository.DriverRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	driverRepo repository.DriverRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

// parseWindow combines the request's date and time fields into a pair of
// instants. Malformed fields surface as ErrInvalidInput; an inverted or
// empty window is left for the pricing layer to reject.
func parseWindow(req FareRequest) (time.Time, time.Time, error) {
	start, err := time.Parse(dateTimeLayout, req.StartDate+"T"+req.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q %q", domain.ErrInvalidInput, req.StartDate, req.StartTime)
	}
	end, err := time.Parse(dateTimeLayout, req.EndDate+"T"+req.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q %q", domain.ErrInvalidInput, req.EndDate, req.EndTime)
	}
	return start, end, nil
}

func newBookingReference() string {
	return "RNT-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *bookingService) EstimateFare(ctx context.Context, vehicleID int64, req FareRequest) (pricing.FareBreakdown, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return pricing.FareBreakdown{}, err
	}
	start, end, err := parseWindow(req)
	if err != nil {
		return pricing.FareBreakdown{}, err
	}
	return pricing.CalculateFare(vehicle, start, end, req.DistanceKm, req.WithDriver)
}

func (s *bookingService) EstimateDriverHireFare(ctx context.Context, req FareRequest) (pricing.FareBreakdown, error) {
	start, end, err := parseWindow(req)
	if err != nil {
		return pricing.FareBreakdown{}, err
	}
	return pricing.CalculateDriverHireFare(start, end, req.DistanceKm)
}

func (s *bookingService) CreateVehicleBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Rentable() {
		return nil, fmt.Errorf("vehicle %d: %w", vehicle.ID, domain.ErrNotAvailable)
	}

	start, end, err := parseWindow(req.Fare)
	if err != nil {
		return nil, err
	}
	fare, err := pricing.CalculateFare(vehicle, start, end, req.Fare.DistanceKm, req.Fare.WithDriver)
	if err != nil {
		return nil, err
	}

	vehicleID := vehicle.ID
	booking := &domain.Booking{
		Reference:       newBookingReference(),
		UserID:          req.UserID,
		VehicleID:       &vehicleID,
		StartDate:       req.Fare.StartDate,
		StartTime:       req.Fare.StartTime,
		EndDate:         req.Fare.EndDate,
		EndTime:         req.Fare.EndTime,
		TotalCostInr:    fare.TotalInr(),
		Status:          domain.BookingStatusConfirmed,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		DistanceKm:      req.Fare.DistanceKm,
		WithDriver:      req.Fare.WithDriver,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	vehicle.Status = domain.VehicleStatusBooked
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("mark vehicle booked: %w", err)
	}

	if renter, err := s.userRepo.GetByID(ctx, req.UserID); err == nil {
		_ = s.emailSvc.SendBookingConfirmation(ctx, renter.Email, renter.Name, booking.Reference, booking.TotalCostInr)
	}

	return booking, nil
}

func (s *bookingService) CreateDriverHire(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	driver, err := s.driverRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if !driver.Hireable() {
		return nil, fmt.Errorf("driver %d: %w", driver.ID, domain.ErrNotAvailable)
	}

	start, end, err := parseWindow(req.Fare)
	if err != nil {
		return nil, err
	}
	fare, err := pricing.CalculateDriverHireFare(start, end, req.Fare.DistanceKm)
	if err != nil {
		return nil, err
	}

	driverID := driver.ID
	booking := &domain.Booking{
		Reference:       newBookingReference(),
		UserID:          req.UserID,
		DriverID:        &driverID,
		StartDate:       req.Fare.StartDate,
		StartTime:       req.Fare.StartTime,
		EndDate:         req.Fare.EndDate,
		EndTime:         req.Fare.EndTime,
		TotalCostInr:    fare.TotalInr(),
		Status:          domain.BookingStatusPending,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		DistanceKm:      req.Fare.DistanceKm,
		WithDriver:      true,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if renter, err := s.userRepo.GetByID(ctx, req.UserID); err == nil {
		_ = s.emailSvc.SendHireRequest(ctx, driver.Email, driver.Name, renter.Name, booking.Reference)
	}

	return booking, nil
}

func (s *bookingService) RespondToHire(ctx context.Context, driverID, bookingID int64, decision domain.BookingDecision) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.DriverID == nil || *booking.DriverID != driverID {
		return nil, fmt.Errorf("booking %d is not assigned to driver %d: %w", bookingID, driverID, domain.ErrUnauthorized)
	}

	var accepted bool
	switch decision {
	case domain.BookingDecisionAccept:
		accepted = true
		err = booking.Transition(domain.BookingStatusConfirmed)
	case domain.BookingDecisionDecline:
		err = booking.Transition(domain.BookingStatusCancelled)
	default:
		return nil, fmt.Errorf("%w: decision %q", domain.ErrInvalidInput, decision)
	}
	if err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if accepted {
		driver, err := s.driverRepo.GetByID(ctx, driverID)
		if err == nil {
			driver.Availability = false
			if err := s.driverRepo.Update(ctx, driver); err != nil {
				return nil, fmt.Errorf("mark driver engaged: %w", err)
			}
		}
	}

	if renter, err := s.userRepo.GetByID(ctx, booking.UserID); err == nil {
		_ = s.emailSvc.SendHireDecision(ctx, renter.Email, renter.Name, booking.Reference, accepted)
	}

	return booking, nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOperator(ctx, actorID, booking); err != nil {
		return nil, err
	}
	if err := booking.Transition(domain.BookingStatusCompleted); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.releaseResources(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actorID {
		actor, err := s.userRepo.GetByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if actor.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("user %d may not cancel booking %d: %w", actorID, bookingID, domain.ErrUnauthorized)
		}
	}
	if err := booking.Transition(domain.BookingStatusCancelled); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.releaseResources(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// authorizeOperator permits completion by the renter, the vehicle's owner,
// the assigned driver, or an admin.
func (s *bookingService) authorizeOperator(ctx context.Context, actorID int64, booking *domain.Booking) error {
	if booking.UserID == actorID {
		return nil
	}
	if booking.DriverID != nil {
		driver, err := s.driverRepo.GetByUser(ctx, actorID)
		if err == nil && driver.ID == *booking.DriverID {
			return nil
		}
	}
	if booking.VehicleID != nil {
		vehicle, err := s.vehicleRepo.GetByID(ctx, *booking.VehicleID)
		if err == nil && vehicle.OwnerID == actorID {
			return nil
		}
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	return fmt.Errorf("user %d is not a party to booking %d: %w", actorID, booking.ID, domain.ErrUnauthorized)
}

// releaseResources returns the booked vehicle and engaged driver to the
// available pool after a terminal transition.
func (s *bookingService) releaseResources(ctx context.Context, booking *domain.Booking) error {
	if booking.VehicleID != nil {
		vehicle, err := s.vehicleRepo.GetByID(ctx, *booking.VehicleID)
		if err != nil {
			return err
		}
		if vehicle.Status == domain.VehicleStatusBooked {
			vehicle.Status = domain.VehicleStatusAvailable
			if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
				return fmt.Errorf("release vehicle: %w", err)
			}
		}
	}
	if booking.DriverID != nil {
		driver, err := s.driverRepo.GetByID(ctx, *booking.DriverID)
		if err != nil {
			return err
		}
		if !driver.Availability {
			driver.Availability = true
			if err := s.driverRepo.Update(ctx, driver); err != nil {
				return fmt.Errorf("release driver: %w", err)
			}
		}
	}
	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingService) ListDriverHires(ctx context.Context, driverID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return s.bookingRepo.ListByDriver(ctx, driverID, status)
}

func (s *bookingService) ListOwnerBookings(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return s.bookingRepo.ListByVehicleOwner(ctx, ownerID)
}
