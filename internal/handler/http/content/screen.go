package content

import (
	"errors"
	"net/http"

	"stock-admin/internal/handler/http/auth"
	"stock-admin/internal/handler/http/respond"
	contentUC "stock-admin/internal/usecase/content"
)

type ScreenHandler struct{ Svc *contentUC.Service }

// ServeHTTP returns the screen state, or only the unauthorized notification
// with 403 for anyone but a super administrator.
func (h ScreenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	screen, err := h.Svc.Screen(actor)
	if errors.Is(err, contentUC.ErrUnauthorized) {
		respond.JSON(w, http.StatusForbidden, unauthorizedBody())
		return
	}
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toScreenDTO(screen))
}
