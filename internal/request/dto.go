package request

import (
	"io"

	"github.com/frahmantamala/reimbursement-workflow/internal"
)

// CreateRequestDTO carries the multipart form fields of a request submission.
// The optional receipt file travels separately as a ReceiptFile.
type CreateRequestDTO struct {
	EmpID       int64   `json:"emp_id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (dto CreateRequestDTO) Validate() error {
	if dto.EmpID <= 0 {
		return internal.NewValidationError("emp_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Category == "" {
		return internal.NewValidationError("category is required", internal.ErrCodeValidationFailed)
	}
	if dto.Amount <= 0 {
		return internal.NewValidationError("amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	return nil
}

type UpdateRequestDTO struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (dto UpdateRequestDTO) Validate() error {
	if dto.Category == "" {
		return internal.NewValidationError("category is required", internal.ErrCodeValidationFailed)
	}
	if dto.Amount <= 0 {
		return internal.NewValidationError("amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	return nil
}

// ReceiptFile is an uploaded receipt image as received from the multipart
// form, not yet stored.
type ReceiptFile struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
