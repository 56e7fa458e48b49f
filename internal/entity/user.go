package entity

import "context"

// Role granted to users who must be alerted when a quotation is signed.
const ESignatureRole = "e-signature"

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Enabled  bool   `json:"enabled"`
}

type UserRepositoryInterface interface {
	// FindEnabledByRole returns only enabled accounts holding the role.
	FindEnabledByRole(ctx context.Context, role string) ([]User, error)
}
