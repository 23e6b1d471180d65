package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/contact-service/internal/auth"
	"github.com/Dan9191/contact-service/internal/config"
	"github.com/Dan9191/contact-service/internal/models"
	"github.com/Dan9191/contact-service/internal/repository"
)

// --- fakes ---

type fakeRepo struct {
	createUserErr error
	createdUserID int64

	findUserOut *models.User
	findUserErr error

	createContactErr error
	lastContact      *models.Contact

	listOut []models.Contact
	listErr error

	updateErr error
	deleteErr error
}

func (f *fakeRepo) CreateUser(ctx context.Context, u *models.User) error {
	if f.createUserErr != nil {
		return f.createUserErr
	}
	u.ID = f.createdUserID
	return nil
}

func (f *fakeRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findUserErr != nil {
		return nil, f.findUserErr
	}
	return f.findUserOut, nil
}

func (f *fakeRepo) CreateContact(ctx context.Context, c *models.Contact) error {
	if f.createContactErr != nil {
		return f.createContactErr
	}
	c.ID = 1
	f.lastContact = c
	return nil
}

func (f *fakeRepo) ListContactsByOwner(ctx context.Context, ownerID int64) ([]models.Contact, error) {
	return f.listOut, f.listErr
}

func (f *fakeRepo) UpdateContact(ctx context.Context, ownerID, contactID int64, c *models.Contact) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	c.ID = contactID
	c.OwnerID = ownerID
	return nil
}

func (f *fakeRepo) DeleteContact(ctx context.Context, ownerID, contactID int64) error {
	return f.deleteErr
}

type fakeMailer struct {
	sentTo []string
	err    error
}

func (f *fakeMailer) SendWelcome(to string) error {
	f.sentTo = append(f.sentTo, to)
	return f.err
}

func newService(t *testing.T, repo Repository, mailer Mailer) *Service {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return NewService(repo, logger, cfg, mailer)
}

// --- tests ---

func TestRegister_IssuesUsableToken(t *testing.T) {
	mailer := &fakeMailer{}
	s := newService(t, &fakeRepo{createdUserID: 42}, mailer)

	token, err := s.Register(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)

	userID, err := auth.ParseUserID(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, []string{"alice@example.com"}, mailer.sentTo)
}

func TestRegister_EmailTaken(t *testing.T) {
	s := newService(t, &fakeRepo{createUserErr: repository.ErrEmailTaken}, nil)

	_, err := s.Register(context.Background(), "alice@example.com", "secret1")
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestRegister_MailFailureIsNotFatal(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	s := newService(t, &fakeRepo{createdUserID: 1}, mailer)

	_, err := s.Register(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := newService(t, &fakeRepo{findUserErr: repository.ErrNotFound}, nil)

	_, err := s.Login(context.Background(), "ghost@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	s := newService(t, &fakeRepo{findUserOut: &models.User{ID: 42, PasswordHash: hash}}, nil)

	_, err = s.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	s := newService(t, &fakeRepo{findUserOut: &models.User{ID: 42, PasswordHash: hash}}, nil)

	token, err := s.Login(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)

	userID, err := auth.ParseUserID(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestCreateContact_SetsOwnerFromArgument(t *testing.T) {
	repo := &fakeRepo{}
	s := newService(t, repo, nil)

	contact, err := s.CreateContact(context.Background(), 7, models.ContactRequest{
		FirstName: "Bob", LastName: "Lee", Email: "bob@x.com",
		Phone: "5551234567", Company: "Acme", JobTitle: "Eng",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.lastContact.OwnerID)
	assert.Equal(t, int64(1), contact.ID)
}

func TestUpdateContact_NotFoundPassesThrough(t *testing.T) {
	s := newService(t, &fakeRepo{updateErr: repository.ErrNotFound}, nil)

	_, err := s.UpdateContact(context.Background(), 7, 99, models.ContactRequest{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteContact_Noop(t *testing.T) {
	s := newService(t, &fakeRepo{}, nil)
	require.NoError(t, s.DeleteContact(context.Background(), 7, 99))
}

func TestExportContacts_XML(t *testing.T) {
	s := newService(t, &fakeRepo{listOut: []models.Contact{
		{ID: 3, OwnerID: 7, FirstName: "Bob", LastName: "Lee", Email: "bob@x.com",
			Phone: "5551234567", Company: "Acme", JobTitle: "Eng"},
	}}, nil)

	out, err := s.ExportContacts(context.Background(), 7)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	entries := doc.FindElements("//contacts/contact")
	require.Len(t, entries, 1)
	assert.Equal(t, "Bob", entries[0].SelectElement("firstName").Text())
}
