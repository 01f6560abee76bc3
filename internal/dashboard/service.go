package dashboard

import (
	"log/slog"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/frahmantamala/reimbursement-workflow/internal/request"
	"github.com/frahmantamala/reimbursement-workflow/internal/user"
)

// Queries is the read surface available inside one consistent snapshot.
type Queries interface {
	GetUser(empID int64) (*user.User, error)
	RequestsByEmp(empID int64) ([]*request.Request, error)
	RequestsByManager(managerID int64) ([]*request.Request, error)
	RequestsByStatus(statuses ...request.Status) ([]*request.Request, error)
	AllRequests() ([]*request.Request, error)
	CountUsers() (int64, error)
	CountRequests() (int64, error)
	CountRequestsByStatus(status request.Status) (int64, error)
}

// Repository runs fn against a single transactional snapshot so the
// dashboard never mixes reads from different points in time.
type Repository interface {
	WithSnapshot(fn func(q Queries) error) error
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

// GetDashboard builds the role-dependent projection for one user. It is a
// pure read with no side effects.
func (s *Service) GetDashboard(empID int64) (*Dashboard, error) {
	var dash *Dashboard

	err := s.repo.WithSnapshot(func(q Queries) error {
		u, err := q.GetUser(empID)
		if err != nil {
			return err
		}

		dash = &Dashboard{
			EmpID: u.EmpID,
			Name:  u.Name,
			Role:  u.Role,
		}

		switch u.Role {
		case user.RoleEmployee:
			return s.fillEmployee(q, dash)
		case user.RoleManager:
			return s.fillManager(q, dash)
		case user.RoleFinance:
			return s.fillFinance(q, dash)
		case user.RoleAudit:
			return s.fillAudit(q, dash)
		case user.RoleAdmin:
			return s.fillAdmin(q, dash)
		}
		return nil
	})
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to build dashboard", "error", err, "emp_id", empID)
		return nil, internal.NewInternalError("failed to build dashboard", err)
	}

	return dash, nil
}

func (s *Service) fillEmployee(q Queries, dash *Dashboard) error {
	own, err := q.RequestsByEmp(dash.EmpID)
	if err != nil {
		return err
	}
	dash.MyRequests = own
	return nil
}

// fillManager includes the team's requests in every status, not only the
// pending ones, so items reopened after a decision stay visible.
func (s *Service) fillManager(q Queries, dash *Dashboard) error {
	team, err := q.RequestsByManager(dash.EmpID)
	if err != nil {
		return err
	}
	own, err := q.RequestsByEmp(dash.EmpID)
	if err != nil {
		return err
	}
	dash.TeamRequests = team
	dash.MyRequests = own
	return nil
}

func (s *Service) fillFinance(q Queries, dash *Dashboard) error {
	queue, err := q.RequestsByStatus(request.StatusManagerApproved, request.StatusAwaitingFinance)
	if err != nil {
		return err
	}
	dash.FinanceQueue = queue
	return nil
}

func (s *Service) fillAudit(q Queries, dash *Dashboard) error {
	all, err := q.AllRequests()
	if err != nil {
		return err
	}
	dash.AllRequests = all
	return nil
}

func (s *Service) fillAdmin(q Queries, dash *Dashboard) error {
	if err := s.fillAudit(q, dash); err != nil {
		return err
	}

	totalUsers, err := q.CountUsers()
	if err != nil {
		return err
	}
	totalRequests, err := q.CountRequests()
	if err != nil {
		return err
	}
	pending, err := q.CountRequestsByStatus(request.StatusPending)
	if err != nil {
		return err
	}
	paid, err := q.CountRequestsByStatus(request.StatusPaid)
	if err != nil {
		return err
	}

	dash.Stats = &Stats{
		TotalUsers:    totalUsers,
		TotalRequests: totalRequests,
		Pending:       pending,
		Paid:          paid,
	}
	return nil
}
