package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// staff name/id are snapshots from the request, not foreign keys;
	// an order survives whatever happens to the users table
	StaffName    string `json:"staff_name"`
	StaffID      string `gorm:"index" json:"staff_id"`
	OfficeBoyID  string `gorm:"index" json:"office_boy_id"`
	DeliveryRoom string `json:"delivery_room"`
	Notes        string `json:"notes"`

	TotalCost float64     `json:"total_cost"`
	Status    OrderStatus `gorm:"index;default:PENDING" json:"status"`

	// preload only on detail endpoints
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"-"`
}
