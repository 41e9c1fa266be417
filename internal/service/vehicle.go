package service

import (
	"context"
	"fmt"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) RegisterVehicle(ctx context.Context, ownerID int64, vehicle *domain.Vehicle) error {
	if vehicle.Make == "" || vehicle.Model == "" || vehicle.Registration == "" {
		return fmt.Errorf("%w: make, model and registration are required", domain.ErrInvalidInput)
	}
	vehicle.OwnerID = ownerID
	// A new vehicle always enters review, whatever the caller sent.
	vehicle.Verification = domain.VerificationPending
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, ownerID int64, vehicle *domain.Vehicle) error {
	current, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		return fmt.Errorf("vehicle %d does not belong to user %d: %w", vehicle.ID, ownerID, domain.ErrUnauthorized)
	}
	// Ownership and verification are not owner-editable.
	vehicle.OwnerID = current.OwnerID
	vehicle.Verification = current.Verification
	// Booked is managed by the booking lifecycle. Owners may only move a
	// vehicle between Available and In Service.
	switch {
	case vehicle.Status == "" || vehicle.Status == current.Status:
		vehicle.Status = current.Status
	case current.Status == domain.VehicleStatusBooked:
		return fmt.Errorf("vehicle %d is booked: %w", vehicle.ID, domain.ErrInvalidTransition)
	case vehicle.Status != domain.VehicleStatusAvailable && vehicle.Status != domain.VehicleStatusInService:
		return fmt.Errorf("%w: vehicle status %q is not owner-settable", domain.ErrInvalidInput, vehicle.Status)
	}
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) ListAvailableVehicles(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListAvailable(ctx, filter)
}

func (s *vehicleService) ListOwnerVehicles(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListByOwner(ctx, ownerID)
}
