package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type driverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

const driverColumns = `id, user_id, name, email, mobile, experience_years, rating, license_url, aadhar_url, id_url,
	is_verified, verification_status, availability, created_on, updated_on`

func scanDriver(row interface{ Scan(...any) error }) (*domain.Driver, error) {
	d := &domain.Driver{}
	err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Email, &d.Mobile, &d.ExperienceYears, &d.Rating, &d.LicenseURL,
		&d.AadharURL, &d.IDURL, &d.IsVerified, &d.Verification, &d.Availability, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *driverRepository) Create(ctx context.Context, d *domain.Driver) error {
	query := `INSERT INTO drivers (user_id, name, email, mobile, experience_years, rating, license_url, aadhar_url,
	            id_url, is_verified, verification_status, availability, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now().Format(dateLayout)
	d.CreatedOn = now
	d.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, d.UserID, d.Name, d.Email, d.Mobile, d.ExperienceYears, d.Rating,
		d.LicenseURL, d.AadharURL, d.IDURL, d.IsVerified, d.Verification, d.Availability,
		d.CreatedOn, d.UpdatedOn).Scan(&d.ID)
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`
	d, err := scanDriver(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *driverRepository) GetByUser(ctx context.Context, userID int64) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1`
	d, err := scanDriver(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *driverRepository) Update(ctx context.Context, d *domain.Driver) error {
	query := `UPDATE drivers SET name=$1, email=$2, mobile=$3, experience_years=$4, rating=$5,
	            license_url=$6, aadhar_url=$7, id_url=$8, is_verified=$9, verification_status=$10,
	            availability=$11, updated_on=$12
	          WHERE id=$13`
	d.UpdatedOn = time.Now().Format(dateLayout)
	res, err := r.db.ExecContext(ctx, query, d.Name, d.Email, d.Mobile, d.ExperienceYears, d.Rating,
		d.LicenseURL, d.AadharURL, d.IDURL, d.IsVerified, d.Verification, d.Availability, d.UpdatedOn, d.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *driverRepository) ListAvailable(ctx context.Context) ([]domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE verification_status = $1 AND availability = TRUE ORDER BY id`
	return r.queryDrivers(ctx, query, domain.VerificationVerified)
}

func (r *driverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY id`
	return r.queryDrivers(ctx, query)
}

func (r *driverRepository) queryDrivers(ctx context.Context, query string, args ...any) ([]domain.Driver, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, *d)
	}
	return drivers, rows.Err()
}
