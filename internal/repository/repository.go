package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/contact-service/internal/models"
	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a row does not exist for the caller.
	// A contact owned by another user is reported the same way.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when a user insert hits the unique email
	// constraint. The HTTP surface still collapses this to a generic
	// error; the distinct value exists for logging.
	ErrEmailTaken = errors.New("email already registered")
)

// uniqueViolation is the Postgres error code for duplicate keys
const uniqueViolation = "23505"

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the users and contacts tables if they don't exist.
// Anything heavier than this bootstrap belongs to external tooling.
func (r *Repository) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			email         TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL REFERENCES users(id),
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			email      TEXT NOT NULL,
			phone      TEXT NOT NULL,
			company    TEXT NOT NULL,
			job_title  TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return nil
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateContact inserts a new contact owned by contact.OwnerID
func (r *Repository) CreateContact(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (user_id, first_name, last_name, email, phone, company, job_title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		contact.OwnerID, contact.FirstName, contact.LastName, contact.Email,
		contact.Phone, contact.Company, contact.JobTitle).
		Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// ListContactsByOwner retrieves all contacts owned by ownerID. No ordering
// is guaranteed; sorting is a client concern.
func (r *Repository) ListContactsByOwner(ctx context.Context, ownerID int64) ([]models.Contact, error) {
	query := `
		SELECT id, user_id, first_name, last_name, email, phone, company, job_title, created_at, updated_at
		FROM contacts
		WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.FirstName, &c.LastName, &c.Email,
			&c.Phone, &c.Company, &c.JobTitle, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}
	return contacts, nil
}

// UpdateContact replaces every field of the contact matching both id and
// owner. Zero matched rows, whether the id is missing or owned by someone
// else, yield ErrNotFound.
func (r *Repository) UpdateContact(ctx context.Context, ownerID, contactID int64, contact *models.Contact) error {
	query := `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, company = $5, job_title = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.Company, contact.JobTitle, contactID, ownerID).
		Scan(&contact.ID, &contact.OwnerID, &contact.CreatedAt, &contact.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// DeleteContact removes the contact matching both id and owner. Deleting a
// row that does not exist for this owner is a successful no-op.
func (r *Repository) DeleteContact(ctx context.Context, ownerID, contactID int64) error {
	query := `DELETE FROM contacts WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, contactID, ownerID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
