package policy

import (
	"github.com/frahmantamala/reimbursement-workflow/internal"
	policyDatamodel "github.com/frahmantamala/reimbursement-workflow/internal/core/datamodel/policy"
)

// Policy is a named expense category with an advisory spending ceiling. The
// limit is stored for client-side display and never enforced against request
// amounts.
type Policy struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	AmountLimit int64  `json:"amount_limit"`
	Description string `json:"description"`
}

type UpsertPolicyDTO struct {
	Category    string `json:"category"`
	AmountLimit int64  `json:"amount_limit"`
	Description string `json:"description"`
}

func (dto UpsertPolicyDTO) Validate() error {
	if dto.Category == "" {
		return internal.NewValidationError("category is required", internal.ErrCodeValidationFailed)
	}
	if dto.AmountLimit <= 0 {
		return internal.NewValidationError("amount_limit must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	return nil
}

func ToDataModel(p *Policy) *policyDatamodel.Policy {
	return &policyDatamodel.Policy{
		ID:          p.ID,
		Category:    p.Category,
		AmountLimit: p.AmountLimit,
		Description: p.Description,
	}
}

func FromDataModel(p *policyDatamodel.Policy) *Policy {
	return &Policy{
		ID:          p.ID,
		Category:    p.Category,
		AmountLimit: p.AmountLimit,
		Description: p.Description,
	}
}

func FromDataModelSlice(rows []*policyDatamodel.Policy) []*Policy {
	result := make([]*Policy, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
