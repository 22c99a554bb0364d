package entity

// OrderStatus is stored as plain text; these are the values the apps and the
// ESP32 firmware send.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusAccepted  OrderStatus = "ACCEPTED"
	StatusDelivered OrderStatus = "DELIVERED"
)
