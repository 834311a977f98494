package dto

// RegisterRequest carries the payload for customer registration.
type RegisterRequest struct {
	CustomerID string `json:"customerId" binding:"required,min=3,max=64"`
	Password   string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries the payload for customer login.
type LoginRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token      string `json:"token"`
	CustomerID string `json:"customerId"`
	Message    string `json:"message"`
}
