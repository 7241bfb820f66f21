package services_test

import (
	"errors"
	"testing"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestUserService(repo *MockUserRepository) *services.UserService {
	return services.NewUserService(repo, services.NewBcryptHasher())
}

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)

	mockRepo.On("ExistsByEmail", "new@example.com", uint(0)).Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := svc.CreateUser(services.CreateUserInput{
		Name:     "New User",
		Phone:    "08123456789",
		Email:    "new@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	// Defaults applied when not provided.
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.UserActive, user.Status)
	// The password is stored hashed, never in plaintext.
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, services.NewBcryptHasher().Verify("password123", user.Password))
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUserDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)

	mockRepo.On("ExistsByEmail", "taken@example.com", uint(0)).Return(true, nil).Once()

	_, err := svc.CreateUser(services.CreateUserInput{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.True(t, errors.Is(err, models.ErrDuplicateEmail))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_UpdateUserPartial(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)
	existing := &models.User{
		ID:     7,
		Name:   "Old Name",
		Phone:  "0811111111",
		Email:  "old@example.com",
		Role:   models.RoleUser,
		Status: models.UserActive,
	}

	mockRepo.On("GetByID", uint(7)).Return(existing, nil).Once()
	mockRepo.On("Update", existing).Return(nil).Once()

	updated, err := svc.UpdateUser(7, services.UserUpdate{Name: strPtr("New Name")})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	// Absent fields stay as they were.
	assert.Equal(t, "0811111111", updated.Phone)
	assert.Equal(t, "old@example.com", updated.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUserEmailTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)
	existing := &models.User{ID: 7, Email: "old@example.com", Status: models.UserActive}

	mockRepo.On("GetByID", uint(7)).Return(existing, nil).Once()
	mockRepo.On("ExistsByEmail", "taken@example.com", uint(7)).Return(true, nil).Once()

	_, err := svc.UpdateUser(7, services.UserUpdate{Email: strPtr("taken@example.com")})
	assert.True(t, errors.Is(err, models.ErrDuplicateEmail))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUserService_UpdateUserSameEmailSkipsCheck(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)
	existing := &models.User{ID: 7, Email: "same@example.com", Status: models.UserActive}

	mockRepo.On("GetByID", uint(7)).Return(existing, nil).Once()
	mockRepo.On("Update", existing).Return(nil).Once()

	_, err := svc.UpdateUser(7, services.UserUpdate{Email: strPtr("same@example.com")})
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUserRehashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)
	existing := &models.User{ID: 7, Email: "u@example.com", Password: "old-digest", Status: models.UserActive}

	mockRepo.On("GetByID", uint(7)).Return(existing, nil).Once()
	mockRepo.On("Update", existing).Return(nil).Once()

	updated, err := svc.UpdateUser(7, services.UserUpdate{Password: strPtr("newsecret")})
	assert.NoError(t, err)
	assert.NotEqual(t, "old-digest", updated.Password)
	assert.NotEqual(t, "newsecret", updated.Password)
	assert.True(t, services.NewBcryptHasher().Verify("newsecret", updated.Password))
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, models.ErrNotFound).Once()

	_, err := svc.GetUser(99)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	mockRepo.AssertExpectations(t)
}

func TestUserService_ListUsersPagination(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)

	mockRepo.On("List", mock.AnythingOfType("models.UserQuery")).
		Return([]models.User{{ID: 1}}, int64(11), nil).Once()

	page, err := svc.ListUsers(models.UserQuery{Page: 2, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 2, page.Page)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newTestUserService(mockRepo)

	mockRepo.On("Delete", uint(7)).Return(nil).Once()
	assert.NoError(t, svc.DeleteUser(7))

	mockRepo.On("Delete", uint(99)).Return(models.ErrNotFound).Once()
	assert.True(t, errors.Is(svc.DeleteUser(99), models.ErrNotFound))
	mockRepo.AssertExpectations(t)
}
