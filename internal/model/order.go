package model

import "time"

// Order statuses. Exactly these three values are valid; they are stored and
// served verbatim, never translated.
const (
	StatusInProgress = "Em andamento"
	StatusDone       = "Finalizado"
	StatusCancelled  = "Cancelado"
)

// ValidStatus reports whether s is one of the three order statuses.
func ValidStatus(s string) bool {
	return s == StatusInProgress || s == StatusDone || s == StatusCancelled
}

// Order represents a customer order with its line items. CustomerName and the
// item product names are denormalized server-side; Total is server-computed.
//
// The item payload keeps the legacy Portuguese field names the deployed
// consumers already parse.
type Order struct {
	ID           int         `json:"id" db:"id"`
	CustomerID   int         `json:"customer_id" db:"customer_id"`
	CustomerName string      `json:"customer_name" db:"customer_name"`
	OrderDate    time.Time   `json:"order_date" db:"order_date"`
	Status       string      `json:"status" db:"status"`
	Total        float64     `json:"total" db:"total"`
	Items        []OrderItem `json:"itens"`
}

// OrderItem represents a line item of a persisted order. UnitPrice is the
// product price at the time the order was placed.
type OrderItem struct {
	ID          int     `json:"id" db:"id"`
	OrderID     int     `json:"-" db:"order_id"`
	ProductID   int     `json:"produto_id" db:"product_id"`
	ProductName string  `json:"produto_nome" db:"product_name"`
	Quantity    int     `json:"quantidade" db:"quantity"`
	UnitPrice   float64 `json:"preco_unitario" db:"unit_price"`
}

// OrderRequest represents the payload for creating an order.
type OrderRequest struct {
	CustomerID int                `json:"customer_id"`
	Status     string             `json:"status"`
	Items      []OrderItemRequest `json:"itens"`
}

// OrderItemRequest represents a single item in an order request.
type OrderItemRequest struct {
	ProductID int `json:"produto_id"`
	Quantity  int `json:"quantidade"`
}

// OrderUpdate represents the payload for updating an order. All fields are
// optional; a non-nil Items replaces the order's line items wholesale, with
// unit prices re-snapshotted and the total recomputed.
type OrderUpdate struct {
	Status     *string            `json:"status,omitempty"`
	CustomerID *int               `json:"customer_id,omitempty"`
	Items      []OrderItemRequest `json:"itens,omitempty"`
}

// OrderCreated is the reduced response for a newly created order.
type OrderCreated struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
}
