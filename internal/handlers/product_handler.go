package handlers

import (
	"log"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. All of
// them require an authenticated, active account.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Patch("/:id/status", h.HandleSetStatus)
	productRoutes.Patch("/:id/stock", h.HandleAdjustStock)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// productResponse augments a product with its derived effective price.
type productResponse struct {
	models.Product
	EffectivePrice float64 `json:"effective_price"`
}

func toProductResponse(p *models.Product) productResponse {
	return productResponse{
		Product:        *p,
		EffectivePrice: p.EffectivePrice(),
	}
}

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=255"`
	Category       string   `json:"category" validate:"required,min=1,max=100"`
	Description    string   `json:"description"`
	UnitPrice      float64  `json:"unit_price" validate:"required,gt=0"`
	InitialStock   int      `json:"initial_stock" validate:"gte=0"`
	Images         []string `json:"images"`
	Status         string   `json:"status" validate:"omitempty,oneof=active inactive"`
	StockThreshold *int     `json:"stock_threshold" validate:"omitempty,gte=0"`
	Discount       float64  `json:"discount" validate:"gte=0,lte=100"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	UnitsSold      int      `json:"units_sold" validate:"gte=0"`
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	product, err := h.service.CreateProduct(services.CreateProductInput{
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		UnitPrice:      req.UnitPrice,
		InitialStock:   req.InitialStock,
		Images:         req.Images,
		Status:         models.ProductStatus(req.Status),
		StockThreshold: req.StockThreshold,
		Discount:       req.Discount,
		Rating:         req.Rating,
		UnitsSold:      req.UnitsSold,
	})
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// HandleListProducts returns a paginated, filtered, sorted product listing.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	query := models.ProductQuery{
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", models.DefaultPageSize),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by", "name"),
		SortOrder: c.Query("sort_order", models.SortAsc),
	}

	page, err := h.service.ListProducts(query)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return errorResponse(c, err)
	}

	items := make([]productResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toProductResponse(&page.Items[i]))
	}

	return c.JSON(fiber.Map{
		"items": items,
		"total": page.Total,
		"page":  page.Page,
		"limit": page.Limit,
		"pages": page.Pages,
	})
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// UpdateProductRequest represents a partial product update. Absent fields
// stay nil and leave the stored values untouched.
type UpdateProductRequest struct {
	Name           *string               `json:"name" validate:"omitempty,min=1,max=255"`
	Category       *string               `json:"category" validate:"omitempty,min=1,max=100"`
	Description    *string               `json:"description"`
	UnitPrice      *float64              `json:"unit_price" validate:"omitempty,gt=0"`
	InitialStock   *int                  `json:"initial_stock" validate:"omitempty,gte=0"`
	Stock          *int                  `json:"stock" validate:"omitempty,gte=0"`
	Images         *[]string             `json:"images"`
	Status         *models.ProductStatus `json:"status" validate:"omitempty,oneof=active inactive low-stock"`
	StockThreshold *int                  `json:"stock_threshold" validate:"omitempty,gte=0"`
	Discount       *float64              `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Rating         *float64              `json:"rating" validate:"omitempty,gte=0,lte=5"`
	UnitsSold      *int                  `json:"units_sold" validate:"omitempty,gte=0"`
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	product, err := h.service.UpdateProduct(id, services.ProductUpdate{
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		UnitPrice:      req.UnitPrice,
		InitialStock:   req.InitialStock,
		Stock:          req.Stock,
		Images:         req.Images,
		Status:         req.Status,
		StockThreshold: req.StockThreshold,
		Discount:       req.Discount,
		Rating:         req.Rating,
		UnitsSold:      req.UnitsSold,
	})
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(toProductResponse(product))
}

// StatusUpdateRequest represents the request body for a status override.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive low-stock"`
}

// HandleSetStatus writes the product status verbatim.
func (h *ProductHandler) HandleSetStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	product, err := h.service.SetStatus(id, models.ProductStatus(req.Status))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// StockUpdateRequest represents the request body for a stock adjustment.
// The operation enum carries the sign; the amount is always non-negative.
type StockUpdateRequest struct {
	Amount    int    `json:"amount" validate:"gte=0"`
	Operation string `json:"operation" validate:"required,oneof=add subtract"`
}

// HandleAdjustStock adds to or subtracts from the product's current stock.
func (h *ProductHandler) HandleAdjustStock(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	product, err := h.service.AdjustStock(id, req.Amount, models.StockOp(req.Operation))
	if err != nil {
		log.Printf("Error adjusting stock for product %d: %v", id, err)
		return errorResponse(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
