package entity

import "fmt"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// ParseUserRole rejects anything outside the closed role set.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleCustomer, RoleAdmin:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID           int64    `db:"user_id"`
	Username     string   `db:"username"`
	PasswordHash string   `db:"password_hash"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Email        string   `db:"email"`
	Phone        string   `db:"phone"`
	Address      string   `db:"address"`
	Role         UserRole `db:"role"`
}
