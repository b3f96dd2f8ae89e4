package api

import (
	"context"

	"skillup/internal/models"
)

// Catalog is the course-listing surface implemented by both external catalog
// variants (the open book catalog and the legacy product service).
//
// FetchCourses must never hard-fail: on total upstream failure it returns the
// fixed fallback sample set with a nil error, because the listing is the
// primary screen and must always render something. FetchCourseByID fails
// loudly instead: a missing detail view must not silently substitute other
// content.
type Catalog interface {
	FetchCourses(ctx context.Context) ([]models.Course, error)
	FetchCourseByID(ctx context.Context, key string) (models.Course, error)
}
