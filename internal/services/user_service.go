package services

import (
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// CreateUserInput carries the fields for a new user.
type CreateUserInput struct {
	Name         string
	Phone        string
	Email        string
	Password     string
	Role         models.Role
	Status       models.UserStatus
	PhotoProfile string
}

// UserUpdate is a partial update: nil fields are absent and leave the stored
// value untouched. A set Password is rehashed before persisting.
type UserUpdate struct {
	Name         *string
	Phone        *string
	Email        *string
	Password     *string
	Role         *models.Role
	Status       *models.UserStatus
	PhotoProfile *string
}

// UserPage is one page of a user listing.
type UserPage struct {
	Items []models.User `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Pages int           `json:"pages"`
}

// UserService handles business logic for user management.
type UserService struct {
	repo   repositories.UserRepository
	hasher PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
	}
}

// CreateUser creates a new user. Fails with ErrDuplicateEmail if the email
// is already registered. The password is stored as a bcrypt digest.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	exists, err := s.repo.ExistsByEmail(input.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateEmail
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	status := input.Status
	if status == "" {
		status = models.UserActive
	}

	user := &models.User{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Password:     digest,
		Role:         role,
		Status:       status,
		PhotoProfile: input.PhotoProfile,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a single user by their ID.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// ListUsers returns one page of users matching the query.
func (s *UserService) ListUsers(query models.UserQuery) (*UserPage, error) {
	query.Normalize()

	users, total, err := s.repo.List(query)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Items: users,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
		Pages: models.TotalPages(total, query.Limit),
	}, nil
}

// UpdateUser applies a partial update. A changed email is checked for
// uniqueness excluding the user itself; a provided password is rehashed.
func (s *UserService) UpdateUser(id uint, update UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		exists, err := s.repo.ExistsByEmail(*update.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrDuplicateEmail
		}
		user.Email = *update.Email
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Password != nil {
		digest, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, err
		}
		user.Password = digest
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	if update.PhotoProfile != nil {
		user.PhotoProfile = *update.PhotoProfile
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user. Users are hard-deleted.
func (s *UserService) DeleteUser(id uint) error {
	return s.repo.Delete(id)
}
