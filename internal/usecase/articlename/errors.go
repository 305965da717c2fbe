// Package articlename provides the use cases for the article-name reference
// data: listing and editing existing records from the management section,
// and bulk-inserting the sample set.
package articlename

import "errors"

// Sentinel errors for article name use case operations.
var (
	// ErrArticleNameNotFound indicates that the requested article name does not exist.
	ErrArticleNameNotFound = errors.New("article name not found")

	// ErrSeedInProgress is returned when a seed is requested while another
	// one is still running. The second request has no effect.
	ErrSeedInProgress = errors.New("sample seed already in progress")

	// ErrUnauthenticated is returned when seeding without an acting user.
	ErrUnauthenticated = errors.New("authenticated user required")
)
