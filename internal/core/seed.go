package core

import (
	"fmt"

	"github.com/sanyco86/sample-app/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// NewAdmin builds the administrator inserted into an empty database.
func NewAdmin(msg SignupMessage) (repository.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, fmt.Errorf("hash admin password: %w", err)
	}

	return repository.User{
		Name:           msg.Name,
		Email:          normalizeEmail(msg.Email),
		PasswordDigest: string(digest),
		Admin:          true,
	}, nil
}
