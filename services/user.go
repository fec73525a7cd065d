package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"online-canteen-api/models"
)

// sellerEmailPrefix decides the role at registration time: shop accounts
// register with addresses like shop.coffee@example.com.
const sellerEmailPrefix = "shop."

// UserService is the identity store. Passwords are kept as bcrypt hashes;
// nothing in this service ever compares plaintext.
type UserService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUserService(db *gorm.DB, now func() time.Time) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{db: db, now: now}
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. The role is derived from the email
// prefix; emails are unique across the system.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	if _, err := s.FindByEmail(email); err == nil {
		return nil, fmt.Errorf("email already in use: %w", ErrInvalidArgument)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	role := models.RoleCustomer
	if strings.HasPrefix(email, sellerEmailPrefix) {
		role = models.RoleSeller
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Info().Uint("user_id", user.ID).Str("role", user.Role.String()).Msg("user registered")
	return &user, nil
}

// Authenticate verifies credentials and stamps the last login time.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.LastLogin = s.now()
	if err := s.db.Model(user).Update("last_login", user.LastLogin).Error; err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}

	log.Info().Uint("user_id", user.ID).Msg("user authenticated")
	return user, nil
}
