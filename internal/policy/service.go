package policy

import (
	"log/slog"

	"github.com/frahmantamala/reimbursement-workflow/internal"
)

// Repository defines the data access methods for policies. Upsert is keyed
// on category and must be atomic.
type Repository interface {
	GetAll() ([]*Policy, error)
	Upsert(p *Policy) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListPolicies() ([]*Policy, error) {
	policies, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list policies", "error", err)
		return nil, internal.NewInternalError("failed to list policies", err)
	}
	return policies, nil
}

// UpsertPolicy overwrites the limit and description of an existing category
// or inserts a new one. There is no delete operation for policies.
func (s *Service) UpsertPolicy(dto UpsertPolicyDTO) (*Policy, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("policy validation failed", "error", err, "category", dto.Category)
		return nil, err
	}

	p := &Policy{
		Category:    dto.Category,
		AmountLimit: dto.AmountLimit,
		Description: dto.Description,
	}

	if err := s.repo.Upsert(p); err != nil {
		s.logger.Error("failed to upsert policy", "error", err, "category", dto.Category)
		return nil, internal.NewInternalError("failed to upsert policy", err)
	}

	s.logger.Info("policy upserted", "category", p.Category, "amount_limit", p.AmountLimit)
	return p, nil
}
