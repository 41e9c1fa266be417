package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, mobile, role, profile_picture_url, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	u.CreatedOn = time.Now().Format(dateLayout)
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.Mobile, u.Role, u.ProfilePictureURL, u.PasswordHash, u.CreatedOn).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, mobile, role, profile_picture_url, password_hash, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Mobile, &u.Role, &u.ProfilePictureURL, &u.PasswordHash, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, mobile, role, profile_picture_url, password_hash, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.Mobile, &u.Role, &u.ProfilePictureURL, &u.PasswordHash, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
