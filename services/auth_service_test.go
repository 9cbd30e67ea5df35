package services

import (
	"testing"
	"time"

	"github.com/3bdelrahman-ibrahim/foodash/entity"
	"github.com/3bdelrahman-ibrahim/foodash/pkg/apperr"
	"github.com/3bdelrahman-ibrahim/foodash/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
}

func signupIn(email string) *SignupIn {
	return &SignupIn{
		Name:     "Ada",
		Phone:    "555-0101",
		Location: "2 Test Ave",
		Email:    email,
		Password: "secret123",
	}
}

var testImage = []byte{0xFF, 0xD8, 0xFF}

func TestSignupHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	out, err := svc.Signup(signupIn("ada@example.com"), testImage, "image/jpeg")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	var stored entity.User
	require.NoError(t, db.First(&stored, out.User.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Signup(signupIn("ada@example.com"), testImage, "image/jpeg")
	require.NoError(t, err)

	_, err = svc.Signup(signupIn("ada@example.com"), testImage, "image/jpeg")
	assert.True(t, apperr.IsConflict(err))

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignupRequiresImage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Signup(signupIn("ada@example.com"), nil, "")
	assert.True(t, apperr.IsValidation(err))
}

func TestSigninChecksCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Signup(signupIn("ada@example.com"), testImage, "image/jpeg")
	require.NoError(t, err)

	out, err := svc.Signin("ada@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "customer", out.Role)

	_, err = svc.Signin("ada@example.com", "wrong")
	assert.True(t, apperr.IsUnauthorized(err))

	_, err = svc.Signin("nobody@example.com", "secret123")
	assert.True(t, apperr.IsUnauthorized(err))
}
