package services

import (
	"errors"

	"github.com/elshafee/Horus-cafee-managment/entity"
	"github.com/elshafee/Horus-cafee-managment/repository"
	"gorm.io/gorm"
)

// created_at goes over the wire the way the first version of the backend
// stored it: local time, no zone suffix. The firmware parses this format.
const createdAtLayout = "2006-01-02T15:04:05"

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs -----

type OrderItemIn struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type CreateOrderIn struct {
	StaffName    string
	StaffID      string
	OfficeBoyID  string
	DeliveryRoom string
	Notes        string
	Items        []OrderItemIn
}

// OrderView is the order row as both apps and the device expect it.
type OrderView struct {
	ID           uint    `json:"id"`
	StaffName    string  `json:"staff_name"`
	StaffID      string  `json:"staff_id"`
	OfficeBoyID  string  `json:"office_boy_id"`
	DeliveryRoom string  `json:"delivery_room"`
	Notes        string  `json:"notes"`
	TotalCost    float64 `json:"total_cost"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

type ItemView struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type StaffOrder struct {
	Order OrderView  `json:"order"`
	Items []ItemView `json:"items"`
}

func toOrderView(o *entity.Order) OrderView {
	return OrderView{
		ID:           o.ID,
		StaffName:    o.StaffName,
		StaffID:      o.StaffID,
		OfficeBoyID:  o.OfficeBoyID,
		DeliveryRoom: o.DeliveryRoom,
		Notes:        o.Notes,
		TotalCost:    o.TotalCost,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt.Format(createdAtLayout),
	}
}

func toItemViews(items []entity.OrderItem) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, ItemView{
			ID:          it.ID,
			OrderID:     it.OrderID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return out
}

// ----- Create -----

// Create inserts the order and all of its items in one transaction; a failure
// partway leaves no orphaned rows. Item prices are the client's snapshot and
// are not re-read from the catalog.
func (s *OrderService) Create(in *CreateOrderIn) (uint, error) {
	if len(in.Items) == 0 {
		return 0, errors.New("items is required")
	}

	total := float64(0)
	for _, it := range in.Items {
		total += it.Price * float64(it.Qty)
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			StaffName:    in.StaffName,
			StaffID:      in.StaffID,
			OfficeBoyID:  in.OfficeBoyID,
			DeliveryRoom: in.DeliveryRoom,
			Notes:        in.Notes,
			TotalCost:    total,
			Status:       entity.StatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range in.Items {
			oi := entity.OrderItem{
				OrderID:     order.ID,
				ProductName: it.Name,
				Quantity:    it.Qty,
				Price:       it.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// ----- Lists -----

// ListForStaff returns the caller's open orders with their items.
func (s *OrderService) ListForStaff(staffID string) ([]StaffOrder, error) {
	orders, err := s.Repo.ListByStaffAndStatus(staffID, entity.StatusPending)
	if err != nil {
		return nil, err
	}

	out := make([]StaffOrder, 0, len(orders))
	for i := range orders {
		items, err := s.Repo.GetOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, StaffOrder{
			Order: toOrderView(&orders[i]),
			Items: toItemViews(items),
		})
	}
	return out, nil
}

// ActiveForOfficeBoy is the delivery queue the ESP32 polls: PENDING and
// ACCEPTED orders, oldest first, notes already translated to spoon counts.
func (s *OrderService) ActiveForOfficeBoy(officeBoyID string) ([]OrderView, error) {
	orders, err := s.Repo.ListActiveForOfficeBoy(officeBoyID)
	if err != nil {
		return nil, err
	}

	out := make([]OrderView, 0, len(orders))
	for i := range orders {
		v := toOrderView(&orders[i])
		if v.Notes != "" {
			v.Notes = TranslateSugarToNumbers(v.Notes)
		}
		out = append(out, v)
	}
	return out, nil
}

// ListAll backs the admin dashboard; status filter optional.
func (s *OrderService) ListAll(status string) ([]OrderView, error) {
	orders, err := s.Repo.ListAll(status)
	if err != nil {
		return nil, err
	}

	out := make([]OrderView, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderView(&orders[i]))
	}
	return out, nil
}

// ----- Status -----

// UpdateStatus overwrites the status unconditionally. Unknown order ids
// update zero rows and still succeed; the device retries on flaky wifi and a
// repeat of the same transition must not turn into an error.
func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	_, err := s.Repo.UpdateStatus(orderID, status)
	return err
}
