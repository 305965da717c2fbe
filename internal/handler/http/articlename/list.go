package articlename

import (
	"net/http"

	"stock-admin/internal/handler/http/respond"
	anUC "stock-admin/internal/usecase/articlename"
)

type ListHandler struct{ Svc anUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, ToDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
