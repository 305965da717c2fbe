package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/handler/http/articlename"
	"stock-admin/internal/handler/http/auth"
	"stock-admin/internal/handler/http/respond"
	contentUC "stock-admin/internal/usecase/content"
)

type CreateHandler struct{ Svc *contentUC.Service }

// createRequest accepts {"form": {...}} as well as a bare form object.
type createRequest struct {
	Form *FormDTO `json:"form"`
	FormDTO
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	form := req.FormDTO
	if req.Form != nil {
		form = *req.Form
	}

	actor, _ := auth.ActorFromContext(r.Context())
	res, err := h.Svc.Submit(r.Context(), actor, form.toForm())

	body := SubmitDTO{
		Notification: toNotificationDTO(res.Notification),
		Form:         toFormDTO(res.Form),
		ModalOpen:    res.ModalOpen,
	}

	var perr *contentUC.PersistError
	switch {
	case err == nil:
		dto := articlename.ToDTO(res.Article)
		body.Article = &dto
		respond.JSON(w, http.StatusCreated, body)
	case errors.Is(err, contentUC.ErrUnauthorized):
		respond.JSON(w, http.StatusForbidden, unauthorizedBody())
	case entity.IsValidationError(err):
		respond.JSON(w, http.StatusBadRequest, body)
	case errors.As(err, &perr):
		respond.JSON(w, http.StatusInternalServerError, body)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
