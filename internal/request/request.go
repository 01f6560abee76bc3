package request

import (
	requestDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/request"
)

// Status is the lifecycle state of a reimbursement request. Pending and
// Awaiting Finance are the only entry states; Paid, Rejected and Rejected by
// Finance are terminal.
type Status string

const (
	StatusPending           Status = "Pending"
	StatusAwaitingFinance   Status = "Awaiting Finance"
	StatusManagerApproved   Status = "Manager Approved"
	StatusRejected          Status = "Rejected"
	StatusRejectedByFinance Status = "Rejected by Finance"
	StatusPaid              Status = "Paid"
)

// RoleManager is the submitter role whose requests skip the manager step and
// enter the workflow at Awaiting Finance.
const RoleManager = "manager"

// InitialStatus computes the entry state from the submitter's role alone;
// no policy or amount check participates.
func InitialStatus(role string) Status {
	if role == RoleManager {
		return StatusAwaitingFinance
	}
	return StatusPending
}

type Request struct {
	ReqID       int64   `json:"req_id"`
	EmpID       int64   `json:"emp_id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ImagePath   *string `json:"image_path,omitempty"`
	Status      Status  `json:"status"`
}

func (r *Request) IsTerminal() bool {
	switch r.Status {
	case StatusPaid, StatusRejected, StatusRejectedByFinance:
		return true
	}
	return false
}

// CanManagerDecide reports whether a manager approve or reject is a legal
// move from the current state.
func (r *Request) CanManagerDecide() bool {
	return r.Status == StatusPending
}

// CanFinancePay reports whether a finance approve or pay is legal: the
// request must sit in the finance queue.
func (r *Request) CanFinancePay() bool {
	return r.Status == StatusManagerApproved || r.Status == StatusAwaitingFinance
}

// CanFinanceReject reports whether finance may reject. Any non-terminal
// state is rejectable.
func (r *Request) CanFinanceReject() bool {
	return !r.IsTerminal()
}

func (r *Request) IsDeletable() bool {
	return r.Status == StatusPending
}

func ToDataModel(r *Request) *requestDatamodel.Request {
	return &requestDatamodel.Request{
		ReqID:       r.ReqID,
		EmpID:       r.EmpID,
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
		ImagePath:   r.ImagePath,
		Status:      string(r.Status),
	}
}

func FromDataModel(r *requestDatamodel.Request) *Request {
	return &Request{
		ReqID:       r.ReqID,
		EmpID:       r.EmpID,
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
		ImagePath:   r.ImagePath,
		Status:      Status(r.Status),
	}
}

func FromDataModelSlice(rows []*requestDatamodel.Request) []*Request {
	result := make([]*Request, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
