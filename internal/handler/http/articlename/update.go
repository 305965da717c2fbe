package articlename

import (
	"encoding/json"
	"errors"
	"net/http"

	"stock-admin/internal/handler/http/pathutil"
	"stock-admin/internal/handler/http/respond"
	anUC "stock-admin/internal/usecase/articlename"
)

type UpdateHandler struct{ Svc anUC.Service }

// ServeHTTP applies a partial update; omitted fields are left unchanged.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name        *string `json:"name"`
		DefaultUnit *string `json:"default_unit"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	a, err := h.Svc.Update(r.Context(), anUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		DefaultUnit: req.DefaultUnit,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, ToDTO(a))
}
