// Package auth implements the department login.
//
// Every department has one shared password. A successful login returns a
// signed token that is bound to the department.
package auth

import (
	"errors"
	"fmt"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswords are used for all departments that have no configured password.
var DefaultPasswords = map[models.Department]string{
	models.DepartmentInfant:         "1234",
	models.DepartmentKindergarten:   "2345",
	models.DepartmentPrimary:        "3456",
	models.DepartmentElementary:     "4567",
	models.DepartmentMiddleSchool:   "5678",
	models.DepartmentHighSchool:     "6789",
	models.DepartmentEnglishWorship: "7890",
}

var ErrWrongPassword = fmt.Errorf("%w: the password is not correct", models.ErrAuthentication)

// Authenticator checks department passwords against their bcrypt hashes.
type Authenticator struct {
	hashes map[models.Department][]byte
}

// NewAuthenticator hashes the passwords of all departments.
// Passwords in overrides replace the default password of the department.
func NewAuthenticator(overrides map[models.Department]string, cost int) (*Authenticator, error) {
	a := &Authenticator{hashes: make(map[models.Department][]byte, len(DefaultPasswords))}

	for _, department := range models.Departments() {
		password, ok := overrides[department]
		if !ok {
			password = DefaultPasswords[department]
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("could not hash password for %s: %w", department, err)
		}
		a.hashes[department] = hash
	}

	return a, nil
}

// Check verifies the password for the department.
func (a *Authenticator) Check(department models.Department, password string) error {
	hash, ok := a.hashes[department]
	if !ok {
		return fmt.Errorf("%w '%s'", models.ErrUnknownDepartment, department)
	}

	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrWrongPassword
	}

	return err
}
