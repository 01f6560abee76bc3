package auth

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/reimbursement-workflow/internal/transport"
	"github.com/frahmantamala/reimbursement-workflow/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*Identity, error)
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

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Login: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.Service.Authenticate(dto)
	if err != nil {
		// deliberately not logging the name on failure
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, identity)
}
