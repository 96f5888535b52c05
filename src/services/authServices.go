package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/CollegeSite/College-Backend/src/middleware"
	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserStore persists admin credentials. FindByEmail returns (nil, nil) when
// no credential exists for the email.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserModel, error)
	Save(ctx context.Context, user *models.UserModel) error
}

// Mailer dispatches password-reset verification codes.
type Mailer interface {
	SendVerificationCode(to, code string) error
}

type AuthService struct {
	store  UserStore
	mailer Mailer
}

func NewAuthService(store UserStore, mailer Mailer) *AuthService {
	return &AuthService{store: store, mailer: mailer}
}

// Login checks the credentials and returns a signed JWT bound to the email,
// valid for one hour. The token is stateless; no session is stored.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour).Unix(), // Token expires in 1 hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ForgotPassword stores a fresh 6-digit verification code on the credential,
// overwriting any prior pending code, then mails it. A failed dispatch is
// reported as MailDeliveryError; the persisted code is not rolled back.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidCredentials)
	}

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}
	user.VerificationCode = &code
	if err := s.store.Save(ctx, user); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationCode(email, code); err != nil {
		return &MailDeliveryError{Err: err}
	}
	return nil
}

// ResetPassword consumes the verification code: on an exact match the new
// password is hashed and stored and the code is cleared, closing the reset
// window. The code does not expire by time.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrValidation)
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || user.VerificationCode == nil || *user.VerificationCode != code {
		return fmt.Errorf("%w: invalid verification code", ErrInvalidCredentials)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.VerificationCode = nil
	return s.store.Save(ctx, user)
}

// generateVerificationCode draws a uniformly random 6-digit code.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
