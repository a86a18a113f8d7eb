package services

import (
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/boska/laundry-dash-api/store"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boska/laundry-dash-api/models"
)

// TokenPrefix marks session tokens issued by the simulated login
const TokenPrefix = "laundry-dash-"

var phoneCodePattern = regexp.MustCompile(`^\d{6}$`)

// AuthService implements the simulated authentication flow: a short
// processing delay, an opaque session token persisted under the fixed
// preference key, and no real credential verification. That is the
// documented design of this app, not a shortcut.
type AuthService struct {
	db    *gorm.DB
	prefs *store.PreferenceStore
	sleep func(time.Duration)
	delay time.Duration
}

// NewAuthService creates an auth service with the default 1 s simulated
// processing delay
func NewAuthService(db *gorm.DB, prefs *store.PreferenceStore) *AuthService {
	return &AuthService{
		db:    db,
		prefs: prefs,
		sleep: time.Sleep,
		delay: time.Second,
	}
}

// SetProcessingDelay overrides the simulated delay (primarily for
// testing)
func (s *AuthService) SetProcessingDelay(delay time.Duration) {
	s.delay = delay
}

// Signup creates the user profile. Credentials are validated by the
// controller; the service only owns uniqueness.
func (s *AuthService) Signup(name, email, phone string) (*models.User, error) {
	s.sleep(s.delay)

	user := models.User{Name: name, Email: email, Phone: phone}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Login issues a session token after the simulated delay and persists
// it under the user-token preference key. An existing profile is
// attached when the email is known; login without signup still works,
// like it does in the app.
func (s *AuthService) Login(email string) (token string, user *models.User, err error) {
	s.sleep(s.delay)

	var found models.User
	if err := s.db.Where("email = ?", email).First(&found).Error; err == nil {
		user = &found
	}

	token = TokenPrefix + uuid.New().String()
	if err := s.prefs.SetSessionToken(token); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout clears the persisted session token
func (s *AuthService) Logout() error {
	return s.prefs.ClearSessionToken()
}

// VerifyPhone accepts any well-formed 6-digit code and marks the
// profile verified when one exists for the email
func (s *AuthService) VerifyPhone(email, code string) error {
	if !phoneCodePattern.MatchString(code) {
		return fmt.Errorf("verification code must be 6 digits")
	}

	s.sleep(s.delay)

	// Verification always succeeds for a well-formed code; flag the
	// profile when we have one
	if email != "" {
		if err := s.db.Model(&models.User{}).Where("email = ?", email).Update("phone_verified", true).Error; err != nil {
			log.Printf("Failed to mark phone verified for %s: %v", email, err)
		}
	}
	return nil
}
