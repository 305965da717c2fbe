package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/admin/article-names/12", "/admin/article-names/:id"},
		{"/admin/article-names/abc", "/admin/article-names/:id"},
		{"/admin/supervisors/3/", "/admin/supervisors/:id"},
		{"/admin/article-names", "/admin/article-names"},
		{"/admin/content?debug=1", "/admin/content"},
		{"/admin/content/seed", "/admin/content/seed"},
		{"/", "/"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    int64
		wantErr bool
	}{
		{name: "valid", path: "/items/42", want: 42},
		{name: "zero", path: "/items/0", wantErr: true},
		{name: "negative", path: "/items/-1", wantErr: true},
		{name: "not a number", path: "/items/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got int64
				err error
			)
			mux := http.NewServeMux()
			mux.HandleFunc("GET /items/{id}", func(w http.ResponseWriter, r *http.Request) {
				got, err = PathID(r)
			})
			mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("err = %v, want ErrInvalidID", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("PathID = %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}
