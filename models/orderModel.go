package models

const (
	StatusPending   = "PENDING"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

const PaymentMethodDefault = "CREDIT_CARD"

// AllStatuses is the order of the status lifecycle plus the cancelled
// terminal state, in the order the back-office dropdown presents them.
var AllStatuses = []string{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

// CanCancel reports whether the customer-facing cancel control is
// offered. Only pending orders can be cancelled by a customer; staff go
// through the status control instead.
func CanCancel(status string) bool {
	return status == StatusPending
}

type OrderItem struct {
	MenuItemID          int64  `json:"menuItemId"`
	MenuItemName        string `json:"menuItemName"`
	Quantity            int    `json:"quantity"`
	Price               Amount `json:"price"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Order is the order service's record. TotalAmount is fragile on this
// backend (see Amount), so every read goes through the tolerant parse.
type Order struct {
	ID                  int64       `json:"id"`
	Status              string      `json:"status"`
	TotalAmount         Amount      `json:"totalAmount"`
	PaymentMethod       string      `json:"paymentMethod"`
	DeliveryAddress     string      `json:"deliveryAddress"`
	SpecialInstructions string      `json:"specialInstructions"`
	OrderDate           string      `json:"orderDate"`
	Items               []OrderItem `json:"orderItems"`
}

// OrderDraft is the checkout payload, assembled from a fresh cart fetch
// at submission time and never stored locally.
type OrderDraft struct {
	DeliveryAddress     string      `json:"deliveryAddress" binding:"required"`
	PaymentMethod       string      `json:"paymentMethod" binding:"required"`
	SpecialInstructions string      `json:"specialInstructions"`
	TotalAmount         float64     `json:"totalAmount"`
	Items               []OrderItem `json:"orderItems"`
}
