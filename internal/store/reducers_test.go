package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillup/internal/models"
)

func TestReduceAuth_Transitions(t *testing.T) {
	user := models.User{ID: 1, Username: "emilys", Token: "tok"}

	t.Run("pending clears error and sets loading", func(t *testing.T) {
		s := reduceAuth(AuthState{Err: "old"}, authPending{})
		assert.True(t, s.IsLoading)
		assert.Empty(t, s.Err)
	})

	t.Run("login fulfilled authenticates", func(t *testing.T) {
		s := reduceAuth(AuthState{IsLoading: true}, loginFulfilled{user: user})
		assert.False(t, s.IsLoading)
		assert.True(t, s.IsAuthenticated)
		require.NotNil(t, s.User)
		assert.Equal(t, "emilys", s.User.Username)
	})

	t.Run("register fulfilled does not authenticate", func(t *testing.T) {
		s := reduceAuth(AuthState{IsLoading: true}, registerFulfilled{user: user})
		assert.False(t, s.IsLoading)
		assert.False(t, s.IsAuthenticated)
		require.NotNil(t, s.User)
	})

	t.Run("rejected records message", func(t *testing.T) {
		s := reduceAuth(AuthState{IsLoading: true}, authRejected{msg: "Invalid credentials"})
		assert.False(t, s.IsLoading)
		assert.Equal(t, "Invalid credentials", s.Err)
	})

	t.Run("logout resets to initial", func(t *testing.T) {
		s := reduceAuth(AuthState{User: &user, IsAuthenticated: true, Err: "x"}, loggedOut{})
		assert.Equal(t, AuthState{}, s)
	})

	t.Run("error cleared explicitly", func(t *testing.T) {
		s := reduceAuth(AuthState{Err: "x"}, authErrorCleared{})
		assert.Empty(t, s.Err)
	})
}

func TestReduceCourses_Transitions(t *testing.T) {
	list := []models.Course{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	t.Run("fulfilled replaces wholesale", func(t *testing.T) {
		s := reduceCourses(CoursesState{Courses: []models.Course{{ID: "stale"}}, IsLoading: true},
			coursesFulfilled{courses: list})
		assert.False(t, s.IsLoading)
		assert.Equal(t, list, s.Courses)
	})

	t.Run("select finds by id", func(t *testing.T) {
		s := reduceCourses(CoursesState{Courses: list}, courseSelected{id: "b"})
		require.NotNil(t, s.SelectedCourse)
		assert.Equal(t, "B", s.SelectedCourse.Title)
	})

	t.Run("select with unknown id leaves selection", func(t *testing.T) {
		s := reduceCourses(CoursesState{Courses: list}, courseSelected{id: "zzz"})
		assert.Nil(t, s.SelectedCourse)
	})

	t.Run("rejected keeps selection unset", func(t *testing.T) {
		s := reduceCourses(CoursesState{IsLoading: true}, coursesRejected{msg: "boom"})
		assert.Nil(t, s.SelectedCourse)
		assert.Equal(t, "boom", s.Err)
		assert.False(t, s.IsLoading)
	})
}

func TestReduceFavourites_ToggleIsIdempotentUnderDoubleApplication(t *testing.T) {
	s := FavouritesState{IDs: []string{"a", "b"}}

	once := reduceFavourites(s, favouriteToggled{id: "42"})
	assert.Equal(t, []string{"a", "b", "42"}, once.IDs)

	twice := reduceFavourites(once, favouriteToggled{id: "42"})
	assert.Equal(t, s.IDs, twice.IDs, "double toggle must restore the prior state")
}

func TestReduceFavourites_ToggleRemovesFromMiddle(t *testing.T) {
	s := reduceFavourites(FavouritesState{IDs: []string{"a", "b", "c"}}, favouriteToggled{id: "b"})
	assert.Equal(t, []string{"a", "c"}, s.IDs)
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	s := New()
	s.dispatch(coursesFulfilled{courses: []models.Course{{ID: "a", Title: "A"}}})
	s.dispatch(loginFulfilled{user: models.User{Username: "emilys"}})

	cs := s.Courses()
	cs.Courses[0].Title = "mutated"
	assert.Equal(t, "A", s.Courses().Courses[0].Title)

	as := s.Auth()
	as.User.Username = "mutated"
	assert.Equal(t, "emilys", s.Auth().User.Username)

	favs := s.Favourites()
	favs = append(favs, "x")
	_ = favs
	assert.Empty(t, s.Favourites())
}

func TestStore_SelectCourse(t *testing.T) {
	s := New()
	s.dispatch(coursesFulfilled{courses: []models.Course{{ID: "a"}, {ID: "b"}}})

	assert.True(t, s.SelectCourse("b"))
	assert.False(t, s.SelectCourse("nope"), "unknown id reports not found")

	s.ClearSelectedCourse()
	assert.Nil(t, s.Courses().SelectedCourse)
}

func TestStore_SubscribeNotifiesAfterDispatch(t *testing.T) {
	s := New()

	var calls int
	unsub := s.Subscribe(func() { calls++ })

	s.dispatch(coursesPending{})
	s.dispatch(coursesErrorCleared{})
	assert.Equal(t, 2, calls)

	unsub()
	s.dispatch(coursesPending{})
	assert.Equal(t, 2, calls, "unsubscribed callback must not fire")
}
