package repositories

import "gudang/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// ExistsByEmail reports whether another user already owns the email.
	// excludeID is ignored when zero.
	ExistsByEmail(email string, excludeID uint) (bool, error)
	// List returns one page of users plus the total count matching the query.
	List(query models.UserQuery) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uint) error
}
