package domain

// RoleCustomer is the single authority granted to authenticated customers.
const RoleCustomer = "customer"

// Principal is the authenticated identity attached to a request context.
// It lives for the duration of a single request and is never persisted.
type Principal struct {
	CustomerID string `json:"customerID"`
	Role       string `json:"role"`
}

// NewCustomerPrincipal builds a Principal with the fixed customer role.
func NewCustomerPrincipal(customerID string) Principal {
	return Principal{CustomerID: customerID, Role: RoleCustomer}
}
