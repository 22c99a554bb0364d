package repository

import (
	"github.com/elshafee/Horus-cafee-managment/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// GET /products - the catalog is small, no paging
type ProductSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

func (r *ProductRepository) ListAll() ([]ProductSummary, error) {
	out := make([]ProductSummary, 0)
	err := r.DB.Model(&entity.Product{}).
		Select("id, name, category, price").
		Order("id ASC").
		Scan(&out).Error
	return out, err
}

// CreateMany inserts rows as-is. There is no uniqueness on product name; the
// seed endpoint duplicating rows on repeat calls is the documented contract.
func (r *ProductRepository) CreateMany(products []entity.Product) error {
	return r.DB.Create(&products).Error
}
