// Package pathutil holds URL path helpers shared by the HTTP handlers.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// PathID parses the {id} wildcard of a ServeMux pattern as a positive int64.
//
//	mux.Handle("DELETE /admin/supervisors/{id}", h)
//	id, err := pathutil.PathID(r) // 3 for /admin/supervisors/3
func PathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
