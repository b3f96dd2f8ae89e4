package store

import (
	"slices"
	"sync"
)

// Store is the Domain State Store: the only mutable shared resource in the
// app. A single mutex serializes transitions; snapshot accessors hand out
// copies so callers can never mutate held state. There is deliberately no
// ordering guarantee between two independently-triggered actions racing
// each other; within one caller, transitions apply in dispatch order.
type Store struct {
	mu         sync.Mutex
	auth       AuthState
	courses    CoursesState
	favourites FavouritesState
	subs       []func()
}

// New returns an empty store: logged out, no courses, no favourites.
func New() *Store {
	return &Store{}
}

func (s *Store) dispatch(m message) {
	s.mu.Lock()
	s.auth = reduceAuth(s.auth, m)
	s.courses = reduceCourses(s.courses, m)
	s.favourites = reduceFavourites(s.favourites, m)
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	// Notify outside the lock so a subscriber may read snapshots.
	for _, fn := range subs {
		fn()
	}
}

// Subscribe registers fn to run after every transition and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	i := len(s.subs) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs[i] = func() {}
	}
}

// Auth returns a copy of the session slice.
func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.auth
	if s.auth.User != nil {
		u := *s.auth.User
		out.User = &u
	}
	return out
}

// Courses returns a copy of the catalog slice.
func (s *Store) Courses() CoursesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.courses
	out.Courses = slices.Clone(s.courses.Courses)
	if s.courses.SelectedCourse != nil {
		c := *s.courses.SelectedCourse
		out.SelectedCourse = &c
	}
	return out
}

// Favourites returns a copy of the favourite id list.
func (s *Store) Favourites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favourites.IDs)
}

// IsFavourite reports membership of id in the favourite set.
func (s *Store) IsFavourite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.favourites.IDs, id)
}

// SelectCourse resolves id against the loaded course list and sets the
// selection. This is the primary detail flow: no fetch is involved. It
// reports whether the id was found.
func (s *Store) SelectCourse(id string) bool {
	s.dispatch(courseSelected{id: id})
	cs := s.Courses()
	return cs.SelectedCourse != nil && cs.SelectedCourse.ID == id
}

// ClearSelectedCourse drops the current selection.
func (s *Store) ClearSelectedCourse() {
	s.dispatch(selectionCleared{})
}

// ClearAuthError resets the session slice's error. Errors are one-shot:
// they stay until the user dismisses the alert, which calls this.
func (s *Store) ClearAuthError() {
	s.dispatch(authErrorCleared{})
}

// ClearCoursesError resets the catalog slice's error.
func (s *Store) ClearCoursesError() {
	s.dispatch(coursesErrorCleared{})
}
