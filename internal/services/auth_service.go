package services

import (
	"errors"
	"fmt"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, tokens, and the account deletion
// lifecycle: a deletion request locks the account for a grace period, a login
// inside that window recovers it, and the sweeper removes it afterwards.
type AuthService struct {
	userRepo    repositories.UserRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
	gracePeriod time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL, gracePeriod time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		gracePeriod: gracePeriod,
	}
}

// RegisterUser registers a new user with a hashed password and the default
// role.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s': %w", user.Email, ErrEmailTaken)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user and returns a JWT token. A login during a
// pending deletion's grace period recovers the account; any other active
// lockout rejects the attempt.
func (s *AuthService) LoginUser(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	if user.LockedOutAt(now) {
		if user.AccountDeletionRequested {
			if err := s.recoverAccount(user); err != nil {
				return "", nil, err
			}
		} else {
			return "", nil, ErrAccountLocked
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, user, nil
}

// recoverAccount clears the deletion request, aborting the scheduled sweep.
func (s *AuthService) recoverAccount(user *models.User) error {
	user.LockoutEnd = nil
	user.AccountDeletionRequested = false
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to recover account %s: %w", user.ID, err)
	}
	return nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GetUser returns the user record for the given ID.
func (s *AuthService) GetUser(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	return s.userRepo.Update(user)
}

// UpdateProfile updates the user's name and, if changed, their email after an
// availability check.
func (s *AuthService) UpdateProfile(userID, firstName, lastName, email string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	if email != "" && email != user.Email {
		if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
			return nil, fmt.Errorf("email '%s': %w", email, ErrEmailTaken)
		}
		user.Email = email
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// MakeSeller grants the seller role to the user.
func (s *AuthService) MakeSeller(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Role = models.RoleSeller
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RequestDeletion schedules the account for deletion: it verifies the
// password, then locks the account for the grace period with the deletion
// flag set. The sweeper removes it once the window elapses without a login.
func (s *AuthService) RequestDeletion(userID, password string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	lockoutEnd := time.Now().Add(s.gracePeriod)
	user.LockoutEnd = &lockoutEnd
	user.AccountDeletionRequested = true
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to schedule deletion for user %s: %w", userID, err)
	}
	return nil
}

// DeactivateAccount locks the account indefinitely without scheduling
// deletion.
func (s *AuthService) DeactivateAccount(userID string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	lockoutEnd := time.Now().AddDate(100, 0, 0)
	user.LockoutEnd = &lockoutEnd
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to deactivate user %s: %w", userID, err)
	}
	return nil
}
