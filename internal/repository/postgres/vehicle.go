package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, owner_id, make, model, year, type, seating_capacity, price_per_day_inr, location,
	status, verification_status, registration, image_url, rc_document_url, insurance_document_url,
	insurance_expiry, service_start_date, service_end_date, service_details, created_on, updated_on`

func scanVehicle(row interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.Type, &v.SeatingCapacity,
		&v.PricePerDayInr, &v.Location, &v.Status, &v.Verification, &v.Registration, &v.ImageURL,
		&v.RCDocumentURL, &v.InsuranceDocURL, &v.InsuranceExpiry, &v.ServiceStartDate,
		&v.ServiceEndDate, &v.ServiceDetails, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (owner_id, make, model, year, type, seating_capacity, price_per_day_inr,
	            location, status, verification_status, registration, image_url, rc_document_url,
	            insurance_document_url, insurance_expiry, service_start_date, service_end_date,
	            service_details, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	          RETURNING id`
	now := time.Now().Format(dateLayout)
	v.CreatedOn = now
	v.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, v.OwnerID, v.Make, v.Model, v.Year, v.Type, v.SeatingCapacity,
		v.PricePerDayInr, v.Location, v.Status, v.Verification, v.Registration, v.ImageURL,
		v.RCDocumentURL, v.InsuranceDocURL, v.InsuranceExpiry, v.ServiceStartDate, v.ServiceEndDate,
		v.ServiceDetails, v.CreatedOn, v.UpdatedOn).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET make=$1, model=$2, year=$3, type=$4, seating_capacity=$5,
	            price_per_day_inr=$6, location=$7, status=$8, verification_status=$9, registration=$10,
	            image_url=$11, rc_document_url=$12, insurance_document_url=$13, insurance_expiry=$14,
	            service_start_date=$15, service_end_date=$16, service_details=$17, updated_on=$18
	          WHERE id=$19`
	v.UpdatedOn = time.Now().Format(dateLayout)
	res, err := r.db.ExecContext(ctx, query, v.Make, v.Model, v.Year, v.Type, v.SeatingCapacity,
		v.PricePerDayInr, v.Location, v.Status, v.Verification, v.Registration, v.ImageURL,
		v.RCDocumentURL, v.InsuranceDocURL, v.InsuranceExpiry, v.ServiceStartDate, v.ServiceEndDate,
		v.ServiceDetails, v.UpdatedOn, v.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) ListAvailable(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE verification_status = $1 AND status = $2`
	args := []any{domain.VerificationVerified, domain.VehicleStatusAvailable}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		query += fmt.Sprintf(" AND location = $%d", len(args))
	}
	query += " ORDER BY id"
	return r.queryVehicles(ctx, query, args...)
}

func (r *vehicleRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE owner_id = $1 ORDER BY id`
	return r.queryVehicles(ctx, query, ownerID)
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) queryVehicles(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}
