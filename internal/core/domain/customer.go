package domain

// Customer represents a portal customer in the domain.
type Customer struct {
	CustomerID   string `json:"customerID"` // e.g. "P-0123456789"
	PasswordHash string `json:"-"`
	AuditFields
}
