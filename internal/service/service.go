package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dan9191/contact-service/internal/auth"
	"github.com/Dan9191/contact-service/internal/config"
	"github.com/Dan9191/contact-service/internal/models"
	"github.com/Dan9191/contact-service/internal/repository"
	"github.com/Dan9191/contact-service/internal/utils/export"
	"github.com/sirupsen/logrus"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so callers cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Repository defines the persistence operations the service needs.
// *repository.Repository satisfies it; tests provide fakes.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateContact(ctx context.Context, contact *models.Contact) error
	ListContactsByOwner(ctx context.Context, ownerID int64) ([]models.Contact, error)
	UpdateContact(ctx context.Context, ownerID, contactID int64, contact *models.Contact) error
	DeleteContact(ctx context.Context, ownerID, contactID int64) error
}

// Mailer sends the optional welcome email. May be nil when SMTP is not
// configured.
type Mailer interface {
	SendWelcome(to string) error
}

// Service handles business logic
type Service struct {
	repo   Repository
	log    *logrus.Logger
	config *config.Config
	mailer Mailer
}

// NewService initializes a new service
func NewService(repo Repository, log *logrus.Logger, cfg *config.Config, mailer Mailer) *Service {
	return &Service{repo: repo, log: log, config: cfg, mailer: mailer}
}

// Register creates a new user with a hashed password and immediately issues
// a token, so signup doubles as login.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: hash}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			s.log.Warnf("Registration rejected, email taken: %s", email)
		}
		return "", err
	}

	token, err := auth.GenerateToken(user.ID, []byte(s.config.JWTSecret), s.config.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	// Best effort: a failed welcome mail never fails the registration.
	if s.mailer != nil {
		if err := s.mailer.SendWelcome(user.Email); err != nil {
			s.log.Warnf("Failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	s.log.Infof("User registered: %s", user.Email)
	return token, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, []byte(s.config.JWTSecret), s.config.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, nil
}

// ListContacts returns all contacts owned by ownerID
func (s *Service) ListContacts(ctx context.Context, ownerID int64) ([]models.Contact, error) {
	return s.repo.ListContactsByOwner(ctx, ownerID)
}

// CreateContact inserts a new contact for ownerID
func (s *Service) CreateContact(ctx context.Context, ownerID int64, req models.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		OwnerID:   ownerID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		JobTitle:  req.JobTitle,
	}
	if err := s.repo.CreateContact(ctx, contact); err != nil {
		return nil, err
	}

	s.log.Infof("Contact %d created for user %d", contact.ID, ownerID)
	return contact, nil
}

// UpdateContact replaces all fields of the contact owned by ownerID.
// repository.ErrNotFound is passed through untouched so that a contact
// owned by another user is indistinguishable from a missing one.
func (s *Service) UpdateContact(ctx context.Context, ownerID, contactID int64, req models.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		JobTitle:  req.JobTitle,
	}
	if err := s.repo.UpdateContact(ctx, ownerID, contactID, contact); err != nil {
		return nil, err
	}

	s.log.Infof("Contact %d updated for user %d", contactID, ownerID)
	return contact, nil
}

// DeleteContact removes the contact owned by ownerID. Missing rows are a
// successful no-op.
func (s *Service) DeleteContact(ctx context.Context, ownerID, contactID int64) error {
	if err := s.repo.DeleteContact(ctx, ownerID, contactID); err != nil {
		return err
	}

	s.log.Infof("Contact %d deleted for user %d", contactID, ownerID)
	return nil
}

// ExportContacts renders the owner's full contact list as an XML document
func (s *Service) ExportContacts(ctx context.Context, ownerID int64) ([]byte, error) {
	contacts, err := s.repo.ListContactsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return export.ContactsXML(contacts)
}
