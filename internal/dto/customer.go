package dto

import (
	"time"

	"github.com/ebanking/portal_backend/internal/core/domain"
)

// CustomerResponse is the API representation of a customer.
type CustomerResponse struct {
	CustomerID string    `json:"customerId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		CreatedAt:  c.CreatedAt,
	}
}
