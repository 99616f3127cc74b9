package services

import (
	"errors"
	"strings"
	"time"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"github.com/NebiyouChanie/sapore/repository"
	"github.com/NebiyouChanie/sapore/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles admin signup/sign-in. Failures come back as
// field-level validation errors so the form can highlight the field.
type AuthService struct {
	adminRepo *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		adminRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Signup(email, password, confirmPassword string) (*entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if password != confirmPassword {
		return nil, apperr.Validation("Validation failed", map[string][]string{
			"confirmPassword": {"Passwords do not match"},
		})
	}

	count, err := s.adminRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("Validation failed", map[string][]string{
			"email": {"Email is already in use"},
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &entity.Admin{Email: email, Password: string(hashed)}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// SignIn checks the credentials and issues the session token.
func (s *AuthService) SignIn(email, password string) (string, *entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		// only a genuinely absent admin is a field error; a store
		// failure propagates raw and surfaces as a logged 500
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.Validation("Validation failed", map[string][]string{
				"email": {"No user found with this email"},
			})
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation("Validation failed", map[string][]string{
			"password": {"Incorrect password"},
		})
	}

	token, err := utils.GenerateToken(admin.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}
