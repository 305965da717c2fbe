package auth

import (
	"strings"

	"stock-admin/internal/domain/entity"
)

// Permission defines the allowed operations for a role: HTTP methods and
// path patterns. "/admin/*" matches "/admin" and every path below it.
type Permission struct {
	AllowedMethods []string
	AllowedPaths   []string
}

// contentScreenPaths are reachable by every authenticated role. The content
// screen applies its own super-admin gate and answers non-super-admins with
// the unauthorized notification instead of a bare 403.
var contentScreenPaths = []string{"/admin/content", "/admin/content/*"}

// RolePermissions maps each role to its allowed permissions.
//
//   - super_admin: everything under /admin
//   - admin: read access to the reference data
//   - viewer: read access to the reference data lists only
//
// OPTIONS is granted to all roles for CORS preflight.
var RolePermissions = map[string]Permission{
	entity.RoleSuperAdmin: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedPaths:   []string{"/admin/*"},
	},
	entity.RoleAdmin: {
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedPaths:   []string{"/admin/article-names/*", "/admin/supervisors/*"},
	},
	entity.RoleViewer: {
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedPaths:   []string{"/admin/article-names", "/admin/supervisors"},
	},
}

// checkRolePermission reports whether role may call method on path.
// Unknown and empty roles are always denied.
//
//	checkRolePermission("super_admin", "POST", "/admin/supervisors")   // true
//	checkRolePermission("admin", "GET", "/admin/article-names/3")      // true
//	checkRolePermission("admin", "DELETE", "/admin/article-names/3")   // false
//	checkRolePermission("viewer", "POST", "/admin/content/seed")       // true (screen gate decides)
func checkRolePermission(role, method, path string) bool {
	if role == "" {
		return false
	}
	perm, exists := RolePermissions[role]
	if !exists {
		return false
	}

	if matchesPathPattern(path, contentScreenPaths) {
		return true
	}

	methodAllowed := false
	for _, m := range perm.AllowedMethods {
		if m == method {
			methodAllowed = true
			break
		}
	}
	if !methodAllowed {
		return false
	}

	return matchesPathPattern(path, perm.AllowedPaths)
}

// matchesPathPattern checks path against exact and "/prefix/*" patterns.
func matchesPathPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "/*" {
			return true
		}

		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
			// "/admin/*" は "/admin" 自身と配下の全パスに一致
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}

		if path == pattern {
			return true
		}
	}
	return false
}
