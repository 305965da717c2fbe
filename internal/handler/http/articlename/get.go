package articlename

import (
	"net/http"

	"stock-admin/internal/handler/http/pathutil"
	"stock-admin/internal/handler/http/respond"
	anUC "stock-admin/internal/usecase/articlename"
)

type GetHandler struct{ Svc anUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, ToDTO(a))
}
