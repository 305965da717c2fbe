package supervisor

import (
	"encoding/json"
	"errors"
	"net/http"

	"stock-admin/internal/handler/http/auth"
	"stock-admin/internal/handler/http/respond"
	supUC "stock-admin/internal/usecase/supervisor"
)

type CreateHandler struct{ Svc supUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	actor, _ := auth.ActorFromContext(r.Context())
	s, err := h.Svc.Create(r.Context(), actor, supUC.CreateInput{
		Name: req.Name, Email: req.Email, Phone: req.Phone,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(s))
}
