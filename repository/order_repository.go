package repository

import (
	"github.com/elshafee/Horus-cafee-managment/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// POST /order - called inside the creation transaction
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// GET /orders/:staff_id - open orders only
func (r *OrderRepository) ListByStaffAndStatus(staffID string, status entity.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("staff_id = ? AND status = ?", staffID, status).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// GET /orders/active/:office_boy_id - FIFO delivery queue, oldest first
func (r *OrderRepository) ListActiveForOfficeBoy(officeBoyID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("office_boy_id = ? AND status IN ?", officeBoyID,
			[]entity.OrderStatus{entity.StatusPending, entity.StatusAccepted}).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// GET /admin/orders - everything, newest first, optional status filter
func (r *OrderRepository) ListAll(status string) ([]entity.Order, error) {
	var orders []entity.Order
	db := r.DB.Order("created_at DESC")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// POST /order/status - unconditional overwrite, the caller decides what to do
// with RowsAffected (updating an unknown id is not an error on this surface)
func (r *OrderRepository) UpdateStatus(orderID uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}
