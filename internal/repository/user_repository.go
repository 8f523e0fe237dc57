package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-booking-api/internal/models"
)

const userColumns = `id, "firstName", "lastName", email, birthdate, "createdAt", "updatedAt"`

// UserRepository manages persistence for users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every user ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM "Users" ORDER BY id`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID fetches a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM "Users" WHERE id = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// FindByEmail fetches the oldest user registered with email. Emails are not
// unique in the store.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM "Users" WHERE LOWER(email) = LOWER($1) ORDER BY id LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// Create inserts a new user and fills the generated columns.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	query := `INSERT INTO "Users" ("firstName", "lastName", email, birthdate, "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $5) RETURNING ` + userColumns
	if err := r.db.GetContext(ctx, user, query, user.FirstName, user.LastName, user.Email, user.Birthdate, now); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of an existing user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `UPDATE "Users" SET "firstName" = $1, "lastName" = $2, email = $3, birthdate = $4, "updatedAt" = $5
		WHERE id = $6 RETURNING ` + userColumns
	if err := r.db.GetContext(ctx, user, query, user.FirstName, user.LastName, user.Email, user.Birthdate, time.Now().UTC(), user.ID); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user. Dependent rows keep living with a NULL userId.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `"Users"`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
