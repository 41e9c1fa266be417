package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"

	"github.com/lib/pq"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (booking_id, reviewer_id, rating, comment, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	rv.CreatedOn = time.Now().Format(dateLayout)
	err := r.db.QueryRowContext(ctx, query, rv.BookingID, rv.ReviewerID, rv.Rating, rv.Comment, rv.CreatedOn).Scan(&rv.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrDuplicateReview
	}
	return err
}

func (r *reviewRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Review, error) {
	query := `SELECT id, booking_id, reviewer_id, rating, comment, created_on FROM reviews WHERE booking_id = $1 ORDER BY id`
	return r.queryReviews(ctx, query, bookingID)
}

func (r *reviewRepository) ListByVehicleOwner(ctx context.Context, ownerID int64) ([]domain.Review, error) {
	query := `SELECT rv.id, rv.booking_id, rv.reviewer_id, rv.rating, rv.comment, rv.created_on
	          FROM reviews rv
	          JOIN bookings b ON b.id = rv.booking_id
	          JOIN vehicles v ON v.id = b.vehicle_id
	          WHERE v.owner_id = $1
	          ORDER BY rv.id DESC`
	return r.queryReviews(ctx, query, ownerID)
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.BookingID, &rv.ReviewerID, &rv.Rating, &rv.Comment, &rv.CreatedOn); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
