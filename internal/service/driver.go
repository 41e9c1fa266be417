package service

import (
	"context"
	"fmt"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type driverService struct {
	driverRepo repository.DriverRepository
}

func NewDriverService(driverRepo repository.DriverRepository) DriverService {
	return &driverService{driverRepo: driverRepo}
}

func (s *driverService) RegisterDriver(ctx context.Context, driver *domain.Driver) error {
	if driver.Name == "" || driver.LicenseURL == "" {
		return fmt.Errorf("%w: name and license document are required", domain.ErrInvalidInput)
	}
	driver.SetVerification(domain.VerificationPending)
	driver.Availability = true
	return s.driverRepo.Create(ctx, driver)
}

func (s *driverService) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	return s.driverRepo.GetByID(ctx, id)
}

func (s *driverService) GetDriverByUser(ctx context.Context, userID int64) (*domain.Driver, error) {
	return s.driverRepo.GetByUser(ctx, userID)
}

func (s *driverService) SetAvailability(ctx context.Context, driverID int64, available bool) (*domain.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.Availability == available {
		return driver, nil
	}
	driver.Availability = available
	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *driverService) ListAvailableDrivers(ctx context.Context) ([]domain.Driver, error) {
	return s.driverRepo.ListAvailable(ctx)
}
