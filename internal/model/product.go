package model

// Product represents a product in the catalogue.
type Product struct {
	ID    int     `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
}

// ProductRequest represents the payload for creating a product.
// Price is a pointer so that an absent price can be told apart from zero.
type ProductRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// ProductUpdate represents the payload for updating a product.
type ProductUpdate struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}
