// Package store is the single process-wide state container. It holds three
// independent slices (auth, courses, favourites) that the presentation layer
// renders from, and funnels every mutation through typed transition messages
// applied by pure reducers. I/O never happens here: the synchronization
// actions in actions.go bridge the API clients and the persistent store to
// this container.
package store

import "skillup/internal/models"

// AuthState is the session slice. IsAuthenticated is true iff User is
// present and was set by a successful login or a restored stored session;
// registration alone never authenticates.
type AuthState struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// CoursesState is the catalog slice. Courses is replaced wholesale by each
// fetch. SelectedCourse is set either by an in-memory lookup (the primary
// detail flow) or by a direct by-id fetch.
type CoursesState struct {
	Courses        []models.Course
	IsLoading      bool
	Err            string
	SelectedCourse *models.Course
}

// FavouritesState is the favourite-set slice: course ids, each present at
// most once, in insertion order.
type FavouritesState struct {
	IDs []string
}
