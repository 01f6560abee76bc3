package auth

import (
	"time"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginDTO struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() error {
	if dto.Name == "" || dto.Password == "" {
		return internal.NewValidationError("name and password are required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// Account is the credential view of a user record, as read by the login
// path. The stored hash never leaves this package.
type Account struct {
	EmpID        int64
	Name         string
	Role         string
	PasswordHash string
}

// Identity is what a successful login returns to the client.
type Identity struct {
	EmpID       int64  `json:"emp_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

type Claims struct {
	EmpID int64  `json:"emp_id"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret         []byte
	AccessTokenTTL time.Duration
}

// CredentialHasher is the bcrypt-backed one-way hash for stored passwords.
// It also satisfies user.PasswordHasher for directory creates.
type CredentialHasher struct {
	cost int
}

func NewCredentialHasher(cost int) *CredentialHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialHasher{cost: cost}
}

func (h *CredentialHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
