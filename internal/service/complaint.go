package service

import (
	"context"
	"fmt"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	bookingRepo   repository.BookingRepository
	userRepo      repository.UserRepository
}

func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		bookingRepo:   bookingRepo,
		userRepo:      userRepo,
	}
}

func (s *complaintService) SubmitComplaint(ctx context.Context, reporterID, bookingID int64, subject, description string) (*domain.Complaint, error) {
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", domain.ErrInvalidInput)
	}
	reporter, err := s.userRepo.GetByID(ctx, reporterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	complaint := &domain.Complaint{
		ReporterID:   reporterID,
		ReporterRole: reporter.Role,
		BookingID:    bookingID,
		Subject:      subject,
		Description:  description,
		Status:       domain.ComplaintStatusOpen,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *complaintService) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	return s.complaintRepo.List(ctx)
}

func (s *complaintService) ListReporterComplaints(ctx context.Context, reporterID int64) ([]domain.Complaint, error) {
	return s.complaintRepo.ListByReporter(ctx, reporterID)
}
