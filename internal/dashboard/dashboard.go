package dashboard

import (
	"github.com/frahmantamala/reimbursement-workflow/internal/request"
)

// Dashboard is the role-scoped read projection returned to clients. Only the
// sections for the user's role are populated.
type Dashboard struct {
	EmpID int64  `json:"emp_id"`
	Name  string `json:"name"`
	Role  string `json:"role"`

	MyRequests   []*request.Request `json:"my_requests,omitempty"`
	TeamRequests []*request.Request `json:"team_requests,omitempty"`
	FinanceQueue []*request.Request `json:"finance_queue,omitempty"`
	AllRequests  []*request.Request `json:"all_requests,omitempty"`
	Stats        *Stats             `json:"stats,omitempty"`
}

// Stats are the aggregate counters included for admins.
type Stats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalRequests int64 `json:"total_requests"`
	Pending       int64 `json:"pending"`
	Paid          int64 `json:"paid"`
}
