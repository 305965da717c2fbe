package supervisor

import (
	"net/http"

	"stock-admin/internal/handler/http/pathutil"
	"stock-admin/internal/handler/http/respond"
	supUC "stock-admin/internal/usecase/supervisor"
)

type DeleteHandler struct{ Svc supUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
