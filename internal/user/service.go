package user

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/reimbursement-workflow/internal"
)

// Repository defines the data access methods for the user directory.
type Repository interface {
	GetAll() ([]*User, error)
	GetByID(empID int64) (*User, error)
	Create(u *User) error
	Delete(empID int64) error
}

// PasswordHasher turns a plaintext password into its stored one-way hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (s *Service) ListUsers() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}
	return users, nil
}

// GetRole resolves the role of an existing user, for use by the request
// lifecycle engine when computing the initial status of a submission.
func (s *Service) GetRole(empID int64) (string, error) {
	u, err := s.repo.GetByID(empID)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// CreateUser adds a directory entry. Manager, finance and audit roles always
// report to the Master Admin regardless of the supplied manager_id; for other
// roles a non-null manager_id must reference an existing user.
func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user validation failed", "error", err, "emp_id", dto.EmpID)
		return nil, err
	}

	if _, err := s.repo.GetByID(dto.EmpID); err == nil {
		s.logger.Warn("duplicate emp_id on create", "emp_id", dto.EmpID)
		return nil, internal.ErrDuplicateUser
	} else if !errors.Is(err, internal.ErrUserNotFound) {
		return nil, internal.NewInternalError("failed to check existing user", err)
	}

	managerID, err := s.resolveManagerID(dto)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err, "emp_id", dto.EmpID)
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := &User{
		EmpID:        dto.EmpID,
		Name:         dto.Name,
		Role:         dto.Role,
		ManagerID:    managerID,
		PasswordHash: hash,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "emp_id", dto.EmpID)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "emp_id", u.EmpID, "role", u.Role)
	return u, nil
}

func (s *Service) resolveManagerID(dto CreateUserDTO) (*int64, error) {
	if ReportsToMasterAdmin(dto.Role) {
		id := MasterAdminID
		return &id, nil
	}

	managerID := dto.NormalizedManagerID()
	if managerID == nil {
		return nil, nil
	}

	if _, err := s.repo.GetByID(*managerID); err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			s.logger.Warn("invalid manager reference on create", "emp_id", dto.EmpID, "manager_id", *managerID)
			return nil, internal.ErrInvalidManager
		}
		return nil, internal.NewInternalError("failed to check manager reference", err)
	}
	return managerID, nil
}

// EnsureMasterAdmin seeds the permanent emp_id=1 admin record if absent.
// Safe to run on every startup and under concurrent instances: losing the
// insert race to another instance counts as success.
func (s *Service) EnsureMasterAdmin(password string) error {
	if _, err := s.repo.GetByID(MasterAdminID); err == nil {
		return nil
	} else if !errors.Is(err, internal.ErrUserNotFound) {
		return internal.NewInternalError("failed to check master admin", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return internal.NewInternalError("failed to hash master admin password", err)
	}

	admin := &User{
		EmpID:        MasterAdminID,
		Name:         "Master Admin",
		Role:         RoleAdmin,
		PasswordHash: hash,
	}

	if err := s.repo.Create(admin); err != nil {
		// benign double-seeding race: another instance inserted first
		if _, checkErr := s.repo.GetByID(MasterAdminID); checkErr == nil {
			return nil
		}
		return internal.NewInternalError("failed to seed master admin", err)
	}

	s.logger.Info("master admin seeded", "emp_id", MasterAdminID)
	return nil
}

// DeleteUser removes a directory entry. The Master Admin is permanently
// protected. Deleting a user neither cascades to their requests nor
// reassigns their direct reports.
func (s *Service) DeleteUser(empID int64) error {
	if empID == MasterAdminID {
		s.logger.Warn("refused delete of master admin")
		return internal.ErrProtectedUser
	}

	if err := s.repo.Delete(empID); err != nil {
		s.logger.Error("failed to delete user", "error", err, "emp_id", empID)
		return internal.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "emp_id", empID)
	return nil
}
