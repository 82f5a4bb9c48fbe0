package model

// Customer represents a registered customer.
type Customer struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// CustomerRequest represents the payload for creating a customer.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerUpdate represents the payload for updating a customer.
// Nil fields are left untouched.
type CustomerUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
