package service

import (
	"context"
	"fmt"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookingRepo repository.BookingRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, bookingRepo: bookingRepo}
}

func (s *reviewService) SubmitReview(ctx context.Context, reviewerID, bookingID int64, rating int32, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != reviewerID {
		return nil, fmt.Errorf("user %d did not make booking %d: %w", reviewerID, bookingID, domain.ErrUnauthorized)
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, fmt.Errorf("booking %d is %s: %w", bookingID, booking.Status, domain.ErrInvalidTransition)
	}

	review := &domain.Review{
		BookingID:  bookingID,
		ReviewerID: reviewerID,
		Rating:     rating,
		Comment:    comment,
	}
	// Uniqueness per (booking, reviewer) is enforced by the store.
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListBookingReviews(ctx context.Context, bookingID int64) ([]domain.Review, error) {
	return s.reviewRepo.ListByBooking(ctx, bookingID)
}

func (s *reviewService) ListOwnerReviews(ctx context.Context, ownerID int64) ([]domain.Review, error) {
	return s.reviewRepo.ListByVehicleOwner(ctx, ownerID)
}
