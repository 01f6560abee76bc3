package request

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/reimbursement-workflow/internal/transport"
	"github.com/frahmantamala/reimbursement-workflow/pkg/logger"
	"github.com/go-chi/chi"
)

// maxReceiptMemory bounds the multipart form buffer; larger files spill to disk.
const maxReceiptMemory = 10 << 20

type ServiceAPI interface {
	CreateRequest(ctx context.Context, dto CreateRequestDTO, receipt *ReceiptFile) (*Request, error)
	UpdateRequest(reqID int64, dto UpdateRequestDTO) (*Request, error)
	DeleteRequest(reqID int64) error
	ManagerApprove(reqID int64) error
	ManagerReject(reqID int64) error
	FinanceApprove(reqID int64) error
	FinanceReject(reqID int64) error
	FinancePay(reqID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     service,
	}
}

// CreateRequest handles the multipart submission: emp_id, category,
// description, amount and an optional receipt file.
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxReceiptMemory); err != nil {
		h.Logger.Error("CreateRequest: invalid multipart form", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	empID, err := strconv.ParseInt(r.FormValue("emp_id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid emp_id")
		return
	}

	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	dto := CreateRequestDTO{
		EmpID:       empID,
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Amount:      amount,
	}

	var receipt *ReceiptFile
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		receipt = &ReceiptFile{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		}
	}

	req, err := h.Service.CreateRequest(r.Context(), dto, receipt)
	if err != nil {
		h.Logger.Error("CreateRequest: service error", "error", err, "emp_id", empID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Request created",
		"req_id":  req.ReqID,
		"status":  req.Status,
	})
}

func (h *Handler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	reqID, ok := h.requestID(w, r)
	if !ok {
		return
	}

	var dto UpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.UpdateRequest(reqID, dto)
	if err != nil {
		h.Logger.Error("UpdateRequest: service error", "error", err, "req_id", reqID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Request updated successfully",
		"status":  req.Status,
	})
}

func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	reqID, ok := h.requestID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteRequest(reqID); err != nil {
		h.Logger.Error("DeleteRequest: service error", "error", err, "req_id", reqID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Request deleted"})
}

func (h *Handler) ManagerApprove(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, "ManagerApprove", h.Service.ManagerApprove, "Request approved by manager")
}

func (h *Handler) ManagerReject(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, "ManagerReject", h.Service.ManagerReject, "Request rejected by manager")
}

func (h *Handler) FinanceApprove(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, "FinanceApprove", h.Service.FinanceApprove, "Request approved and paid")
}

func (h *Handler) FinanceReject(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, "FinanceReject", h.Service.FinanceReject, "Request rejected by finance")
}

func (h *Handler) FinancePay(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, "FinancePay", h.Service.FinancePay, "Payment released successfully")
}

func (h *Handler) applyTransition(w http.ResponseWriter, r *http.Request, name string, fn func(int64) error, message string) {
	reqID, ok := h.requestID(w, r)
	if !ok {
		return
	}

	if err := fn(reqID); err != nil {
		h.Logger.Error(name+": service error", "error", err, "req_id", reqID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) requestID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "req_id")
	reqID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid request ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid request ID")
		return 0, false
	}
	return reqID, true
}
