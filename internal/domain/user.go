package domain

// User is the domain model for accounts that open support calls.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Sector       string
}
