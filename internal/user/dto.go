package user

import (
	"github.com/frahmantamala/reimbursement-workflow/internal"
)

type CreateUserDTO struct {
	EmpID     int64  `json:"emp_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Password  string `json:"password"`
	ManagerID *int64 `json:"manager_id,omitempty"`
}

func (dto CreateUserDTO) Validate() error {
	if dto.EmpID <= 0 {
		return internal.NewValidationError("emp_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	if !ValidRole(dto.Role) {
		return internal.NewValidationError("role must be one of employee, manager, finance, audit, admin", internal.ErrCodeInvalidRole)
	}
	return nil
}

// NormalizedManagerID treats zero and absent manager references as null.
func (dto CreateUserDTO) NormalizedManagerID() *int64 {
	if dto.ManagerID == nil || *dto.ManagerID == 0 {
		return nil
	}
	return dto.ManagerID
}
