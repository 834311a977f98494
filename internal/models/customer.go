package models

// Customer represents a row in the customers table.
type Customer struct {
	CustomerID   string `db:"customer_id"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
