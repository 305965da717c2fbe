package supervisor

import (
	"encoding/json"
	"errors"
	"net/http"

	"stock-admin/internal/handler/http/pathutil"
	"stock-admin/internal/handler/http/respond"
	supUC "stock-admin/internal/usecase/supervisor"
)

type UpdateHandler struct{ Svc supUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Phone    *string `json:"phone"`
		IsActive *bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	s, err := h.Svc.Update(r.Context(), supUC.UpdateInput{
		ID: id, Name: req.Name, Email: req.Email, Phone: req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(s))
}
