package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint `gorm:"index" json:"order_id"`

	// product name and price are snapshots taken at order time; catalog
	// price changes never touch placed orders
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
