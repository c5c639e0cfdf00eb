package services

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskmanager/internal/constants"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/internal/utils"
)

var (
	ErrEmailTaken           = errors.New("email already in use")
	ErrWeakPassword         = errors.New("password too weak")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles user management business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents the required information to create a new user.
type CreateUserInput struct {
	Fullname string
	Username string
	Email    string
	Photo    *string
	Password string
}

// UpdateUserInput represents a partial user update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Fullname *string
	Username *string
	Email    *string
	Photo    *string
	Password *string
}

// List returns users ordered by creation date descending.
func (s *UserService) List(params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// Create registers a new user with a bcrypt-hashed password.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Fullname:     input.Fullname,
		Username:     input.Username,
		Email:        input.Email,
		Photo:        input.Photo,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Update applies a partial update to an existing user.
func (s *UserService) Update(id string, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Fullname != nil {
		user.Fullname = *input.Fullname
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}
	if input.Password != nil {
		if err := ValidatePassword(*input.Password); err != nil {
			return nil, err
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), constants.BcryptCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes a user; their projects and tasks cascade away with them.
func (s *UserService) Delete(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// ValidatePassword enforces the password strength rules: minimum length plus
// at least one lowercase letter, uppercase letter, digit, and special
// character.
func ValidatePassword(password string) error {
	if len(password) < constants.MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, constants.MinPasswordLength)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasLower:
		return fmt.Errorf("%w: must contain at least one lowercase letter", ErrWeakPassword)
	case !hasUpper:
		return fmt.Errorf("%w: must contain at least one uppercase letter", ErrWeakPassword)
	case !hasDigit:
		return fmt.Errorf("%w: must contain at least one number", ErrWeakPassword)
	case !hasSpecial:
		return fmt.Errorf("%w: must contain at least one special character", ErrWeakPassword)
	}

	return nil
}
