package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/reimbursement-workflow/internal/transport"
	"github.com/frahmantamala/reimbursement-workflow/pkg/logger"
)

type ServiceAPI interface {
	GetDashboard(empID int64) (*Dashboard, error)
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

type dashboardRequest struct {
	EmpID int64 `json:"emp_id"`
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	var body dashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Error("GetDashboard: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dash, err := h.Service.GetDashboard(body.EmpID)
	if err != nil {
		h.Logger.Error("GetDashboard: service error", "error", err, "emp_id", body.EmpID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dash)
}
