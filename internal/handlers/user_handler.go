package handlers

import (
	"log"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user management. Its routes must be
// registered behind the admin role gate.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user management routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Phone        string `json:"phone" validate:"required,max=20"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role" validate:"omitempty,oneof=admin user"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
	PhotoProfile string `json:"photo_profile" validate:"omitempty,max=500"`
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	user, err := h.service.CreateUser(services.CreateUserInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Password:     req.Password,
		Role:         models.Role(req.Role),
		Status:       models.UserStatus(req.Status),
		PhotoProfile: req.PhotoProfile,
	})
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleListUsers returns a paginated, filtered, sorted user listing.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	query := models.UserQuery{
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", models.DefaultPageSize),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by", "name"),
		SortOrder: c.Query("sort_order", models.SortAsc),
	}

	page, err := h.service.ListUsers(query)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(page)
}

// HandleGetUser retrieves a single user by their ID.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(user)
}

// UpdateUserRequest represents a partial user update. Absent fields stay nil
// and leave the stored values untouched.
type UpdateUserRequest struct {
	Name         *string            `json:"name" validate:"omitempty,min=1,max=255"`
	Phone        *string            `json:"phone" validate:"omitempty,max=20"`
	Email        *string            `json:"email" validate:"omitempty,email"`
	Password     *string            `json:"password" validate:"omitempty,min=6"`
	Role         *models.Role       `json:"role" validate:"omitempty,oneof=admin user"`
	Status       *models.UserStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	PhotoProfile *string            `json:"photo_profile" validate:"omitempty,max=500"`
}

// HandleUpdateUser applies a partial update to a user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	user, err := h.service.UpdateUser(id, services.UserUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		Status:       req.Status,
		PhotoProfile: req.PhotoProfile,
	})
	if err != nil {
		log.Printf("Error updating user %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(user)
}

// HandleDeleteUser removes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.DeleteUser(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
