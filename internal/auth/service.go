package auth

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/golang-jwt/jwt/v5"
)

// Repository resolves login names to stored credentials. Returns
// internal.ErrUserNotFound for unknown names.
type Repository interface {
	GetAccountByName(name string) (*Account, error)
}

type TokenGenerator interface {
	GenerateAccessToken(empID int64, role string) (string, error)
}

type Service struct {
	repo     Repository
	tokenGen TokenGenerator
	logger   *slog.Logger
}

func NewService(repo Repository, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		tokenGen: tokenGen,
		logger:   logger,
	}
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &JWTTokenGenerator{
		Secret:         []byte(secret),
		AccessTokenTTL: ttl,
	}
}

// Authenticate checks name+password and returns the caller's identity with a
// fresh access token. Unknown name and wrong password produce the same
// generic unauthorized error so callers cannot enumerate users.
func (s *Service) Authenticate(dto LoginDTO) (*Identity, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	account, err := s.repo.GetAccountByName(dto.Name)
	if err != nil {
		if !errors.Is(err, internal.ErrUserNotFound) {
			s.logger.Error("credential lookup failed", "error", err)
		}
		return nil, internal.ErrInvalidCredentials
	}

	if err := VerifyPassword(account.PasswordHash, dto.Password); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokenGen.GenerateAccessToken(account.EmpID, account.Role)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err, "emp_id", account.EmpID)
		return nil, internal.NewInternalError("failed to generate access token", err)
	}

	s.logger.Info("login succeeded", "emp_id", account.EmpID, "role", account.Role)

	return &Identity{
		EmpID:       account.EmpID,
		Name:        account.Name,
		Role:        account.Role,
		AccessToken: token,
	}, nil
}

func (j *JWTTokenGenerator) GenerateAccessToken(empID int64, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		EmpID: empID,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(empID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}
