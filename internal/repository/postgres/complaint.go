package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type complaintRepository struct {
	db *sql.DB
}

func NewComplaintRepository(db *sql.DB) repository.ComplaintRepository {
	return &complaintRepository{db: db}
}

const complaintColumns = `id, reporter_id, reporter_role, booking_id, subject, description, status, created_on, updated_on`

func (r *complaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	query := `INSERT INTO complaints (reporter_id, reporter_role, booking_id, subject, description, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now().Format(dateLayout)
	c.CreatedOn = now
	c.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, c.ReporterID, c.ReporterRole, c.BookingID, c.Subject,
		c.Description, c.Status, c.CreatedOn, c.UpdatedOn).Scan(&c.ID)
}

func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	c := &domain.Complaint{}
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.ReporterID, &c.ReporterRole, &c.BookingID,
		&c.Subject, &c.Description, &c.Status, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *complaintRepository) Update(ctx context.Context, c *domain.Complaint) error {
	query := `UPDATE complaints SET subject=$1, description=$2, status=$3, updated_on=$4 WHERE id=$5`
	c.UpdatedOn = time.Now().Format(dateLayout)
	res, err := r.db.ExecContext(ctx, query, c.Subject, c.Description, c.Status, c.UpdatedOn, c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *complaintRepository) List(ctx context.Context) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints ORDER BY id`
	return r.queryComplaints(ctx, query)
}

func (r *complaintRepository) ListByReporter(ctx context.Context, reporterID int64) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE reporter_id = $1 ORDER BY id`
	return r.queryComplaints(ctx, query, reporterID)
}

func (r *complaintRepository) queryComplaints(ctx context.Context, query string, args ...any) ([]domain.Complaint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []domain.Complaint
	for rows.Next() {
		var c domain.Complaint
		if err := rows.Scan(&c.ID, &c.ReporterID, &c.ReporterRole, &c.BookingID, &c.Subject,
			&c.Description, &c.Status, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}
