// Package content serves the reference-data administration screen.
package content

import (
	"net/http"

	contentUC "stock-admin/internal/usecase/content"
)

// Register registers the content screen routes.
func Register(mux *http.ServeMux, svc *contentUC.Service) {
	mux.Handle("GET /admin/content", ScreenHandler{svc})
	mux.Handle("POST /admin/content/article-names", CreateHandler{svc})
	mux.Handle("POST /admin/content/seed", SeedHandler{svc})
}
