package services

import (
	"github.com/elshafee/Horus-cafee-managment/entity"
	"github.com/elshafee/Horus-cafee-managment/repository"
)

// CatalogService serves the product list and the one-off seed.
type CatalogService struct {
	productRepo *repository.ProductRepository
}

func NewCatalogService(repo *repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: repo}
}

// the fixed starter catalog; /seed inserts these as-is
var defaultProducts = []entity.Product{
	{Name: "Coffee", Category: "Drink", Price: 10},
	{Name: "Tea", Category: "Drink", Price: 8},
	{Name: "Water", Category: "Drink", Price: 5},
	{Name: "Sandwich", Category: "Food", Price: 25},
	{Name: "Croissant", Category: "Food", Price: 20},
}

func (s *CatalogService) List() ([]repository.ProductSummary, error) {
	return s.productRepo.ListAll()
}

// Seed is an administrative bootstrap, not a safe-to-repeat endpoint: calling
// it twice duplicates the catalog.
func (s *CatalogService) Seed() error {
	products := make([]entity.Product, len(defaultProducts))
	copy(products, defaultProducts)
	return s.productRepo.CreateMany(products)
}
