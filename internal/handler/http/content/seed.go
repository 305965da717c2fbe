package content

import (
	"errors"
	"net/http"

	"stock-admin/internal/handler/http/auth"
	"stock-admin/internal/handler/http/respond"
	"stock-admin/internal/usecase/articlename"
	contentUC "stock-admin/internal/usecase/content"
)

type SeedHandler struct{ Svc *contentUC.Service }

// ServeHTTP runs the sample seed. A request arriving while a seed is running
// gets 409 and changes nothing.
func (h SeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	out, err := h.Svc.Seed(r.Context(), actor)
	body := SeedDTO{Notification: toNotificationDTO(out.Notification), Created: out.Created}

	switch {
	case err == nil:
		respond.JSON(w, http.StatusOK, body)
	case errors.Is(err, contentUC.ErrUnauthorized):
		respond.JSON(w, http.StatusForbidden, unauthorizedBody())
	case errors.Is(err, articlename.ErrSeedInProgress):
		respond.JSON(w, http.StatusConflict, body)
	default:
		respond.JSON(w, http.StatusInternalServerError, body)
	}
}
