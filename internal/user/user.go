package user

import (
	userDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/user"
)

// Role is the fixed set of workflow roles.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleFinance  = "finance"
	RoleAudit    = "audit"
	RoleAdmin    = "admin"
)

// MasterAdminID is the permanent root admin record. It is seeded at startup
// and can never be deleted.
const MasterAdminID int64 = 1

type User struct {
	EmpID        int64  `json:"emp_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	ManagerID    *int64 `json:"manager_id,omitempty"`
	PasswordHash string `json:"-"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleFinance, RoleAudit, RoleAdmin:
		return true
	}
	return false
}

// ReportsToMasterAdmin reports whether the role always has its reporting
// edge forced to the Master Admin regardless of input.
func ReportsToMasterAdmin(role string) bool {
	switch role {
	case RoleManager, RoleFinance, RoleAudit:
		return true
	}
	return false
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		EmpID:        u.EmpID,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		ManagerID:    u.ManagerID,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		EmpID:        u.EmpID,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		ManagerID:    u.ManagerID,
	}
}

func FromDataModelSlice(rows []*userDatamodel.User) []*User {
	result := make([]*User, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
