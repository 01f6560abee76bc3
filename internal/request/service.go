package request

import (
	"context"
	"io"
	"log/slog"

	"github.com/frahmantamala/reimbursement-workflow/internal"
)

// Repository defines the data access methods for reimbursement requests.
type Repository interface {
	Create(req *Request) error
	GetByID(reqID int64) (*Request, error)
	Update(req *Request) error
	UpdateStatus(reqID int64, status Status) error
	Delete(reqID int64) error
}

// SubmitterDirectory resolves the role of a submitting user. Returns
// internal.ErrUserNotFound when the emp_id is unknown.
type SubmitterDirectory interface {
	GetRole(empID int64) (string, error)
}

// ReceiptUploader stores raw receipt bytes and returns a stable URL.
type ReceiptUploader interface {
	Upload(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error)
}

type Service struct {
	repo      Repository
	directory SubmitterDirectory
	receipts  ReceiptUploader
	logger    *slog.Logger
}

func NewService(repo Repository, directory SubmitterDirectory, receipts ReceiptUploader, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		receipts:  receipts,
		logger:    logger,
	}
}

// CreateRequest submits a new reimbursement request. The receipt, when
// present, is uploaded before any local write so a storage failure leaves no
// partial state. The initial status is derived from the submitter's role
// only: managers enter at Awaiting Finance, everyone else at Pending.
func (s *Service) CreateRequest(ctx context.Context, dto CreateRequestDTO, receipt *ReceiptFile) (*Request, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("request validation failed", "error", err, "emp_id", dto.EmpID)
		return nil, err
	}

	role, err := s.directory.GetRole(dto.EmpID)
	if err != nil {
		s.logger.Error("submitter lookup failed", "error", err, "emp_id", dto.EmpID)
		return nil, err
	}

	var imagePath *string
	if receipt != nil {
		url, err := s.receipts.Upload(ctx, receipt.FileName, receipt.Reader, receipt.Size, receipt.ContentType)
		if err != nil {
			s.logger.Error("receipt upload failed", "error", err, "emp_id", dto.EmpID, "file", receipt.FileName)
			return nil, internal.NewExternalError("Upload failed", internal.ErrCodeReceiptUpload, err)
		}
		imagePath = &url
	}

	req := &Request{
		EmpID:       dto.EmpID,
		Category:    dto.Category,
		Description: dto.Description,
		Amount:      dto.Amount,
		ImagePath:   imagePath,
		Status:      InitialStatus(role),
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create request", "error", err, "emp_id", dto.EmpID)
		return nil, internal.NewInternalError("failed to create request", err)
	}

	s.logger.Info("request created",
		"req_id", req.ReqID,
		"emp_id", req.EmpID,
		"amount", req.Amount,
		"status", req.Status)

	return req, nil
}

// UpdateRequest overwrites category, description and amount, and forces the
// status back to Pending regardless of the prior state. This is the
// re-submission path: a rejected request edited by its owner re-enters the
// workflow from the start.
func (s *Service) UpdateRequest(reqID int64, dto UpdateRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("update validation failed", "error", err, "req_id", reqID)
		return nil, err
	}

	req, err := s.repo.GetByID(reqID)
	if err != nil {
		return nil, err
	}

	req.Category = dto.Category
	req.Description = dto.Description
	req.Amount = dto.Amount
	req.Status = StatusPending

	if err := s.repo.Update(req); err != nil {
		s.logger.Error("failed to update request", "error", err, "req_id", reqID)
		return nil, internal.NewInternalError("failed to update request", err)
	}

	s.logger.Info("request updated and reset to pending", "req_id", reqID)
	return req, nil
}

// DeleteRequest removes a request, permitted only while it is still Pending.
func (s *Service) DeleteRequest(reqID int64) error {
	req, err := s.repo.GetByID(reqID)
	if err != nil {
		return err
	}

	if !req.IsDeletable() {
		s.logger.Warn("delete refused for non-pending request", "req_id", reqID, "status", req.Status)
		return internal.ErrNotDeletable
	}

	if err := s.repo.Delete(reqID); err != nil {
		s.logger.Error("failed to delete request", "error", err, "req_id", reqID)
		return internal.NewInternalError("failed to delete request", err)
	}

	s.logger.Info("request deleted", "req_id", reqID)
	return nil
}

func (s *Service) ManagerApprove(reqID int64) error {
	return s.transition(reqID, StatusManagerApproved, func(r *Request) bool { return r.CanManagerDecide() })
}

func (s *Service) ManagerReject(reqID int64) error {
	return s.transition(reqID, StatusRejected, func(r *Request) bool { return r.CanManagerDecide() })
}

func (s *Service) FinanceApprove(reqID int64) error {
	return s.transition(reqID, StatusPaid, func(r *Request) bool { return r.CanFinancePay() })
}

func (s *Service) FinancePay(reqID int64) error {
	return s.transition(reqID, StatusPaid, func(r *Request) bool { return r.CanFinancePay() })
}

func (s *Service) FinanceReject(reqID int64) error {
	return s.transition(reqID, StatusRejectedByFinance, func(r *Request) bool { return r.CanFinanceReject() })
}

// transition applies a guarded status change. An illegal source state yields
// a conflict and leaves the record untouched.
func (s *Service) transition(reqID int64, target Status, allowed func(*Request) bool) error {
	req, err := s.repo.GetByID(reqID)
	if err != nil {
		return err
	}

	if !allowed(req) {
		s.logger.Warn("illegal status transition refused",
			"req_id", reqID,
			"from", req.Status,
			"to", target)
		return internal.NewConflictError(
			"cannot move request from "+string(req.Status)+" to "+string(target),
			internal.ErrCodeIllegalTransition)
	}

	if err := s.repo.UpdateStatus(reqID, target); err != nil {
		s.logger.Error("failed to update request status", "error", err, "req_id", reqID, "status", target)
		return internal.NewInternalError("failed to update request status", err)
	}

	s.logger.Info("request status updated", "req_id", reqID, "from", req.Status, "to", target)
	return nil
}
