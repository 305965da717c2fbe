// Package articlename serves the article name management section.
package articlename

import (
	"errors"
	"net/http"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/handler/http/respond"
	anUC "stock-admin/internal/usecase/articlename"
)

// Register registers the article name management routes.
// Authorization is applied by the auth middleware wrapping the mux.
func Register(mux *http.ServeMux, svc anUC.Service) {
	mux.Handle("GET /admin/article-names", ListHandler{svc})
	mux.Handle("GET /admin/article-names/{id}", GetHandler{svc})
	mux.Handle("PUT /admin/article-names/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /admin/article-names/{id}", DeleteHandler{svc})
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case entity.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, anUC.ErrArticleNameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	respond.SafeError(w, statusFor(err), err)
}
