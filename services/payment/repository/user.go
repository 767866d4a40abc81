package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/arcpay/internal/pkg/models"
)

// UserRepo reads user profiles from postgres
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a postgres user repository
func NewUserRepository(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser returns (nil, nil) when the user does not exist
func (r *UserRepo) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, `
		SELECT user_id, name, email, phone, preferences, whitelisted_recipients,
			linked_accounts, created_at, updated_at
		FROM users WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return &u, nil
}

// SaveUser inserts or replaces a profile. Used for seeding.
func (r *UserRepo) SaveUser(ctx context.Context, u *models.User) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (user_id, name, email, phone, preferences, whitelisted_recipients, linked_accounts)
		VALUES (:user_id, :name, :email, :phone, :preferences, :whitelisted_recipients, :linked_accounts)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			preferences = EXCLUDED.preferences,
			whitelisted_recipients = EXCLUDED.whitelisted_recipients,
			linked_accounts = EXCLUDED.linked_accounts,
			updated_at = NOW()`, u)
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", u.UserID, err)
	}
	return nil
}
