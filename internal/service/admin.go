package service

import (
	"context"
	"fmt"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type adminService struct {
	vehicleRepo   repository.VehicleRepository
	driverRepo    repository.DriverRepository
	bookingRepo   repository.BookingRepository
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
}

func NewAdminService(
	vehicleRepo repository.VehicleRepository,
	driverRepo repository.DriverRepository,
	bookingRepo repository.BookingRepository,
	complaintRepo repository.ComplaintRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) AdminService {
	return &adminService{
		vehicleRepo:   vehicleRepo,
		driverRepo:    driverRepo,
		bookingRepo:   bookingRepo,
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
	}
}

func (s *adminService) requireAdmin(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleAdmin {
		return fmt.Errorf("user %d is not an admin: %w", userID, domain.ErrUnauthorized)
	}
	return nil
}

func (s *adminService) SetVerification(ctx context.Context, adminID int64, kind domain.EntityKind, entityID int64, decision domain.VerificationStatus) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	switch kind {
	case domain.EntityKindVehicle:
		vehicle, err := s.vehicleRepo.GetByID(ctx, entityID)
		if err != nil {
			return err
		}
		if !domain.CanVerificationTransition(vehicle.Verification, decision) {
			return fmt.Errorf("vehicle %d is %s: %w", entityID, vehicle.Verification, domain.ErrInvalidTransition)
		}
		vehicle.Verification = decision
		if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
			return err
		}
		if owner, err := s.userRepo.GetByID(ctx, vehicle.OwnerID); err == nil {
			subject := fmt.Sprintf("%s %s", vehicle.Make, vehicle.Model)
			_ = s.emailSvc.SendVerificationDecision(ctx, owner.Email, owner.Name, subject, decision)
		}
		return nil

	case domain.EntityKindDriver:
		driver, err := s.driverRepo.GetByID(ctx, entityID)
		if err != nil {
			return err
		}
		if !domain.CanVerificationTransition(driver.Verification, decision) {
			return fmt.Errorf("driver %d is %s: %w", entityID, driver.Verification, domain.ErrInvalidTransition)
		}
		driver.SetVerification(decision)
		if err := s.driverRepo.Update(ctx, driver); err != nil {
			return err
		}
		_ = s.emailSvc.SendVerificationDecision(ctx, driver.Email, driver.Name, "your driver profile", decision)
		return nil

	default:
		return fmt.Errorf("%w: entity kind %q", domain.ErrInvalidInput, kind)
	}
}

func (s *adminService) ListPendingVerifications(ctx context.Context) ([]domain.Vehicle, []domain.Driver, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	var pendingVehicles []domain.Vehicle
	for _, v := range vehicles {
		if v.Verification == domain.VerificationPending {
			pendingVehicles = append(pendingVehicles, v)
		}
	}
	var pendingDrivers []domain.Driver
	for _, d := range drivers {
		if d.Verification == domain.VerificationPending {
			pendingDrivers = append(pendingDrivers, d)
		}
	}
	return pendingVehicles, pendingDrivers, nil
}

func (s *adminService) UpdateComplaintStatus(ctx context.Context, adminID, complaintID int64, status domain.ComplaintStatus) (*domain.Complaint, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	switch status {
	case domain.ComplaintStatusOpen, domain.ComplaintStatusInProgress, domain.ComplaintStatusResolved:
	default:
		return nil, fmt.Errorf("%w: complaint status %q", domain.ErrInvalidInput, status)
	}

	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	complaint.Status = status
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *adminService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *adminService) ListAllVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *adminService) ListAllDrivers(ctx context.Context) ([]domain.Driver, error) {
	return s.driverRepo.List(ctx)
}
