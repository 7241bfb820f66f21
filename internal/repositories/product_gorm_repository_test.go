package repositories_test

import (
	"errors"
	"fmt"
	"testing"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func intPtr(v int) *int {
	return &v
}

// setupDB opens a uniquely named in-memory sqlite database so tests do not
// share state.
func setupDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	return db
}

// seedProducts inserts a fixed catalog exercising every filter branch.
func seedProducts(t *testing.T, repo *repositories.GORMProductRepository) {
	t.Helper()
	products := []models.Product{
		// Active, plenty of stock.
		{Name: "Laptop", Category: "electronics", UnitPrice: 1200, InitialStock: 10, Stock: 10, Status: models.ProductActive, StockThreshold: intPtr(5)},
		// Active, stock at threshold: in the derived low-stock set.
		{Name: "Mouse", Category: "electronics", UnitPrice: 25, InitialStock: 5, Stock: 5, Status: models.ProductActive, StockThreshold: intPtr(5)},
		// Active, stock below threshold: in the derived low-stock set.
		{Name: "Keyboard", Category: "electronics", UnitPrice: 75, InitialStock: 3, Stock: 3, Status: models.ProductActive, StockThreshold: intPtr(5)},
		// Inactive with low stock: excluded, manual override wins.
		{Name: "Monitor", Category: "electronics", UnitPrice: 200, InitialStock: 1, Stock: 1, Status: models.ProductInactive, StockThreshold: intPtr(5)},
		// Active without a threshold: excluded no matter the stock.
		{Name: "Desk", Category: "furniture", UnitPrice: 300, InitialStock: 0, Stock: 0, Status: models.ProductActive},
		// Stored as low-stock but replenished: excluded from the derived set.
		{Name: "Chair", Category: "furniture", UnitPrice: 150, InitialStock: 50, Stock: 50, Status: models.ProductLowStock, StockThreshold: intPtr(5)},
	}
	for i := range products {
		assert.NoError(t, repo.Create(&products[i]))
	}
}

func listNames(products []models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestGORMProductRepository_LowStockFilterIsDerived(t *testing.T) {
	db := setupDB(t, "products_lowstock")
	repo := repositories.NewGORMProductRepository(db)
	seedProducts(t, repo)

	query := models.ProductQuery{Status: string(models.ProductLowStock)}
	query.Normalize()

	products, total, err := repo.List(query)
	assert.NoError(t, err)
	// Exactly {p : p.status==active AND p.threshold set AND p.stock<=threshold}.
	// Not a stored-status equality: the stored-low-stock Chair is out, the
	// inactive Monitor is out.
	assert.Equal(t, int64(2), total)
	assert.ElementsMatch(t, []string{"Mouse", "Keyboard"}, listNames(products))
}

func TestGORMProductRepository_StatusEqualityFilter(t *testing.T) {
	db := setupDB(t, "products_status")
	repo := repositories.NewGORMProductRepository(db)
	seedProducts(t, repo)

	query := models.ProductQuery{Status: string(models.ProductInactive)}
	query.Normalize()

	products, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"Monitor"}, listNames(products))
}

func TestGORMProductRepository_CategoryFilter(t *testing.T) {
	db := setupDB(t, "products_category")
	repo := repositories.NewGORMProductRepository(db)
	seedProducts(t, repo)

	query := models.ProductQuery{Category: "furniture"}
	query.Normalize()

	products, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.ElementsMatch(t, []string{"Desk", "Chair"}, listNames(products))
}

func TestGORMProductRepository_SearchCaseInsensitive(t *testing.T) {
	db := setupDB(t, "products_search")
	repo := repositories.NewGORMProductRepository(db)
	seedProducts(t, repo)

	query := models.ProductQuery{Search: "LAP"}
	query.Normalize()

	products, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"Laptop"}, listNames(products))
}

func TestGORMProductRepository_SortAndPagination(t *testing.T) {
	db := setupDB(t, "products_sort")
	repo := repositories.NewGORMProductRepository(db)
	seedProducts(t, repo)

	query := models.ProductQuery{Page: 1, Limit: 3, SortBy: "unit_price", SortOrder: models.SortDesc}
	query.Normalize()

	products, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Equal(t, []string{"Laptop", "Desk", "Monitor"}, listNames(products))

	query.Page = 2
	products, _, err = repo.List(query)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Chair", "Keyboard", "Mouse"}, listNames(products))
}

func TestGORMProductRepository_CRUD(t *testing.T) {
	db := setupDB(t, "products_crud")
	repo := repositories.NewGORMProductRepository(db)

	product := &models.Product{
		Name:      "Webcam",
		Category:  "electronics",
		UnitPrice: 45,
		Stock:     8,
		Status:    models.ProductActive,
		Images:    []string{"/img/webcam-front.jpg", "/img/webcam-side.jpg"},
	}
	assert.NoError(t, repo.Create(product))
	assert.NotZero(t, product.ID)

	got, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Webcam", got.Name)
	// Images survive the JSON serializer round trip.
	assert.Equal(t, product.Images, got.Images)

	got.Stock = 2
	assert.NoError(t, repo.Update(got))

	again, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, again.Stock)

	assert.NoError(t, repo.Delete(product.ID))
	_, err = repo.GetByID(product.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// Deleting again reports not found; products are hard-deleted.
	assert.True(t, errors.Is(repo.Delete(product.ID), models.ErrNotFound))
}

func TestGORMProductRepository_UpdateMissing(t *testing.T) {
	db := setupDB(t, "products_update_missing")
	repo := repositories.NewGORMProductRepository(db)

	err := repo.Update(&models.Product{ID: 999, Name: "Ghost", Category: "none", Status: models.ProductActive})
	assert.Error(t, err)
}
