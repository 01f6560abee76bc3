package policy

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/reimbursement-workflow/internal/transport"
	"github.com/frahmantamala/reimbursement-workflow/pkg/logger"
)

type ServiceAPI interface {
	ListPolicies() ([]*Policy, error)
	UpsertPolicy(dto UpsertPolicyDTO) (*Policy, error)
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

func (h *Handler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Service.ListPolicies()
	if err != nil {
		h.Logger.Error("ListPolicies: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, policies)
}

func (h *Handler) UpsertPolicy(w http.ResponseWriter, r *http.Request) {
	var dto UpsertPolicyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpsertPolicy: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.Service.UpsertPolicy(dto); err != nil {
		h.Logger.Error("UpsertPolicy: service error", "error", err, "category", dto.Category)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Policy updated"})
}
