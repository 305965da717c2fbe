// Package supervisor serves the supervisor management section.
package supervisor

import (
	"errors"
	"net/http"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/handler/http/respond"
	supUC "stock-admin/internal/usecase/supervisor"
)

// Register registers the supervisor management routes.
func Register(mux *http.ServeMux, svc supUC.Service) {
	mux.Handle("GET /admin/supervisors", ListHandler{svc})
	mux.Handle("POST /admin/supervisors", CreateHandler{svc})
	mux.Handle("PUT /admin/supervisors/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /admin/supervisors/{id}", DeleteHandler{svc})
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case entity.IsValidationError(err):
		code = http.StatusBadRequest
	case errors.Is(err, supUC.ErrSupervisorNotFound):
		code = http.StatusNotFound
	}
	respond.SafeError(w, code, err)
}
