package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/reimbursement-workflow/internal/transport"
	"github.com/frahmantamala/reimbursement-workflow/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListUsers() ([]*User, error)
	CreateUser(dto CreateUserDTO) (*User, error)
	DeleteUser(empID int64) error
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

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.Logger.Error("ListUsers: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateUser: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.CreateUser(dto)
	if err != nil {
		h.Logger.Error("CreateUser: service error", "error", err, "emp_id", dto.EmpID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User added",
		"emp_id":  u.EmpID,
	})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "emp_id")
	empID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteUser: invalid emp_id", "emp_id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid emp_id")
		return
	}

	if err := h.Service.DeleteUser(empID); err != nil {
		h.Logger.Error("DeleteUser: service error", "error", err, "emp_id", empID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}
