package model

import "time"

// SalesSummary aggregates the whole order book.
type SalesSummary struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalUnitsSold int     `json:"totalUnitsSold"`
}

// PendingOrder is a report row for an order still in progress.
type PendingOrder struct {
	ID           int       `json:"id"`
	CustomerName string    `json:"customer_name"`
	OrderDate    time.Time `json:"order_date"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
}

// TopCustomer is a report row ranking customers by order count.
type TopCustomer struct {
	Name       string `json:"name"`
	OrderCount int    `json:"orderCount"`
}
