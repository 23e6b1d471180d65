package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dan9191/contact-service/internal/models"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("a.b+c@sub.domain.org"))

	for _, bad := range []string{"", "plain", "missing@tld", "two words@x.com", "@x.com"} {
		assert.Error(t, ValidateEmail(bad), "email %q should be rejected", bad)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1", "secret1"))
	assert.Error(t, ValidatePassword("short", "short"))
	assert.Error(t, ValidatePassword("secret1", "secret2"))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("5551234567"))

	for _, bad := range []string{"", "555123456", "55512345678", "555-123-45", "555123456a"} {
		assert.Error(t, ValidatePhone(bad), "phone %q should be rejected", bad)
	}
}

func TestValidateContact(t *testing.T) {
	valid := models.ContactRequest{
		FirstName: "Bob", LastName: "Lee", Email: "bob@x.com",
		Phone: "5551234567", Company: "Acme", JobTitle: "Eng",
	}
	assert.NoError(t, ValidateContact(valid))

	missing := valid
	missing.Company = ""
	assert.Error(t, ValidateContact(missing))

	badEmail := valid
	badEmail.Email = "nope"
	assert.Error(t, ValidateContact(badEmail))

	badPhone := valid
	badPhone.Phone = "123"
	assert.Error(t, ValidateContact(badPhone))
}
