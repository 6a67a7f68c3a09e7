// Package repository provides PostgreSQL persistence for users and
// presentations.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
)

// PostgresUserRepository implements user persistence against PostgreSQL.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the
// given database connection.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// EmailExists reports whether a user with the given email already exists.
func (r *PostgresUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a new user record.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, u *models.User) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, email, name, avatar, password_hash)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
		u.ID, u.Email, u.Name, u.Avatar, u.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByEmail fetches a user by email. Returns sql.ErrNoRows when no
// such user exists.
func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var (
		u      models.User
		name   sql.NullString
		avatar sql.NullString
		hash   sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, email, name, avatar, password_hash FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &name, &avatar, &hash)
	if err != nil {
		return nil, err
	}
	u.Name = name.String
	u.Avatar = avatar.String
	u.PasswordHash = hash.String
	return &u, nil
}
