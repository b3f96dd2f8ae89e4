package store

import (
	"slices"

	"skillup/internal/models"
)

// message is a typed state transition. Reducers are pure functions of
// (current slice state, message); they never touch external resources.
type message interface{ isMessage() }

type authPending struct{}
type loginFulfilled struct{ user models.User }
type registerFulfilled struct{ user models.User }
type sessionRestored struct{ user models.User }
type authRejected struct{ msg string }
type loggedOut struct{}
type authErrorCleared struct{}

type coursesPending struct{}
type coursesFulfilled struct{ courses []models.Course }
type coursesRejected struct{ msg string }
type courseDetailFulfilled struct{ course models.Course }
type courseSelected struct{ id string }
type selectionCleared struct{}
type coursesErrorCleared struct{}

type favouriteToggled struct{ id string }
type favouritesReplaced struct{ ids []string }

func (authPending) isMessage()           {}
func (loginFulfilled) isMessage()        {}
func (registerFulfilled) isMessage()     {}
func (sessionRestored) isMessage()       {}
func (authRejected) isMessage()          {}
func (loggedOut) isMessage()             {}
func (authErrorCleared) isMessage()      {}
func (coursesPending) isMessage()        {}
func (coursesFulfilled) isMessage()      {}
func (coursesRejected) isMessage()       {}
func (courseDetailFulfilled) isMessage() {}
func (courseSelected) isMessage()        {}
func (selectionCleared) isMessage()      {}
func (coursesErrorCleared) isMessage()   {}
func (favouriteToggled) isMessage()      {}
func (favouritesReplaced) isMessage()    {}

func reduceAuth(s AuthState, m message) AuthState {
	switch m := m.(type) {
	case authPending:
		s.IsLoading = true
		s.Err = ""
	case loginFulfilled:
		s.IsLoading = false
		s.IsAuthenticated = true
		s.User = &m.user
		s.Err = ""
	case registerFulfilled:
		// An account was created but no session started.
		s.IsLoading = false
		s.User = &m.user
	case sessionRestored:
		s.IsAuthenticated = true
		s.User = &m.user
	case authRejected:
		s.IsLoading = false
		s.Err = m.msg
	case loggedOut:
		s = AuthState{}
	case authErrorCleared:
		s.Err = ""
	}
	return s
}

func reduceCourses(s CoursesState, m message) CoursesState {
	switch m := m.(type) {
	case coursesPending:
		s.IsLoading = true
		s.Err = ""
	case coursesFulfilled:
		s.IsLoading = false
		s.Courses = m.courses
	case coursesRejected:
		s.IsLoading = false
		s.Err = m.msg
	case courseDetailFulfilled:
		s.IsLoading = false
		s.SelectedCourse = &m.course
	case courseSelected:
		// Lookup within the already-loaded list; an unknown id leaves the
		// selection untouched.
		for i := range s.Courses {
			if s.Courses[i].ID == m.id {
				course := s.Courses[i]
				s.SelectedCourse = &course
				break
			}
		}
	case selectionCleared:
		s.SelectedCourse = nil
	case coursesErrorCleared:
		s.Err = ""
	}
	return s
}

func reduceFavourites(s FavouritesState, m message) FavouritesState {
	switch m := m.(type) {
	case favouriteToggled:
		if i := slices.Index(s.IDs, m.id); i >= 0 {
			s.IDs = slices.Delete(slices.Clone(s.IDs), i, i+1)
		} else {
			s.IDs = append(slices.Clone(s.IDs), m.id)
		}
	case favouritesReplaced:
		s.IDs = slices.Clone(m.ids)
	}
	return s
}
