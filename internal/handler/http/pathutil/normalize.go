package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic admin routes. Pre-compiled at init.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/admin/article-names/[^/]+$`), Template: "/admin/article-names/:id"},
	{Pattern: regexp.MustCompile(`^/admin/supervisors/[^/]+$`), Template: "/admin/supervisors/:id"},
}

// NormalizePath collapses IDs in dynamic paths so that metrics labels and
// span names stay low-cardinality. Query strings and trailing slashes are
// stripped; unknown paths are returned unchanged.
//
//	NormalizePath("/admin/article-names/12")   // "/admin/article-names/:id"
//	NormalizePath("/admin/supervisors/3/")     // "/admin/supervisors/:id"
//	NormalizePath("/admin/content?x=1")        // "/admin/content"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
