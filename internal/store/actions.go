package store

import (
	"context"

	"skillup/internal/logging"
	"skillup/internal/models"
	"skillup/internal/storage"
	"skillup/internal/validation"
)

// AuthAPI is the slice of the auth service the actions need.
type AuthAPI interface {
	Login(ctx context.Context, creds models.LoginCredentials) (models.User, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (models.User, error)
}

// CatalogAPI is the slice of the catalog service the actions need. The bulk
// fetch degrades internally to fallback samples; the by-id fetch fails loudly.
type CatalogAPI interface {
	FetchCourses(ctx context.Context) ([]models.Course, error)
	FetchCourseByID(ctx context.Context, key string) (models.Course, error)
}

// SettingsStore is the slice of the persistent key-value store the actions
// need. Get degrades to absent on any read failure.
type SettingsStore interface {
	Put(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string, out any) bool
	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys ...string) error
}

// Actions are the synchronization actions bridging external I/O and the
// state container. Every asynchronous action follows the same machine:
// pending, then fulfilled or rejected, each applied to its slice. The
// durable copy in settings is written after the in-memory transition,
// never before.
type Actions struct {
	store    *Store
	auth     AuthAPI
	catalog  CatalogAPI
	settings SettingsStore
	log      logging.Logger
}

// NewActions wires the store to its collaborators.
func NewActions(s *Store, auth AuthAPI, catalog CatalogAPI, settings SettingsStore, log logging.Logger) *Actions {
	return &Actions{
		store:    s,
		auth:     auth,
		catalog:  catalog,
		settings: settings,
		log:      log.With("component", "actions"),
	}
}

// Login validates the credentials locally, authenticates against the auth
// service and, on success, persists the session material. A validation
// failure never reaches the network and never transitions the slice; an API
// failure transitions to rejected with the server's message. A persistence
// failure after a successful login keeps the fulfilled state (the durable
// copy is best-effort) but is reported to the caller.
func (a *Actions) Login(ctx context.Context, creds models.LoginCredentials) error {
	if err := validation.ValidateLogin(creds); err != nil {
		return err
	}

	a.store.dispatch(authPending{})

	user, err := a.auth.Login(ctx, creds)
	if err != nil {
		a.store.dispatch(authRejected{msg: err.Error()})
		return err
	}

	a.store.dispatch(loginFulfilled{user: user})

	if user.Token != "" {
		if err := a.settings.Put(ctx, storage.KeyAuthToken, user.Token); err != nil {
			a.log.Error(ctx, "failed to persist auth token", "error", err)
			return err
		}
	}
	if err := a.settings.Put(ctx, storage.KeyUserData, user); err != nil {
		a.log.Error(ctx, "failed to persist user data", "error", err)
		return err
	}

	a.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

// Register validates and creates the account. Success records the user in
// the slice but never authenticates: creating an account does not start a
// session, and nothing is persisted.
func (a *Actions) Register(ctx context.Context, creds models.RegisterCredentials) error {
	if err := validation.ValidateRegister(creds); err != nil {
		return err
	}

	a.store.dispatch(authPending{})

	user, err := a.auth.Register(ctx, creds)
	if err != nil {
		a.store.dispatch(authRejected{msg: err.Error()})
		return err
	}

	a.store.dispatch(registerFulfilled{user: user})
	a.log.Info(ctx, "registered", "username", user.Username)
	return nil
}

// LoadUserFromStorage restores the session at cold start. Both the user
// record and a usable (non-expired) token must be present; anything less is
// a silent no-op, not a user-facing error. It reports whether a session was
// restored.
func (a *Actions) LoadUserFromStorage(ctx context.Context) bool {
	var user models.User
	if !a.settings.Get(ctx, storage.KeyUserData, &user) {
		return false
	}
	var token string
	if !a.settings.Get(ctx, storage.KeyAuthToken, &token) || token == "" {
		return false
	}
	if tokenExpired(token) {
		a.log.Info(ctx, "stored session token expired, staying logged out")
		return false
	}

	a.store.dispatch(sessionRestored{user: user})
	return true
}

// Logout resets the session slice and removes the persisted session
// material. The in-memory reset happens unconditionally; a storage failure
// is reported but does not resurrect the session.
func (a *Actions) Logout(ctx context.Context) error {
	a.store.dispatch(loggedOut{})

	if err := a.settings.RemoveMany(ctx, storage.KeyAuthToken, storage.KeyUserData); err != nil {
		a.log.Error(ctx, "failed to clear persisted session", "error", err)
		return err
	}
	return nil
}

// FetchCourses refreshes the catalog slice. The catalog client absorbs
// total upstream failure into fallback samples, so from the store's point
// of view this effectively always fulfils.
func (a *Actions) FetchCourses(ctx context.Context) error {
	a.store.dispatch(coursesPending{})

	courses, err := a.catalog.FetchCourses(ctx)
	if err != nil {
		a.store.dispatch(coursesRejected{msg: err.Error()})
		return err
	}

	a.store.dispatch(coursesFulfilled{courses: courses})
	return nil
}

// FetchCourseByID fetches a single course detail by its upstream key and
// sets the selection. Unlike the bulk fetch, failures land in the slice's
// error field and the selection stays unset.
func (a *Actions) FetchCourseByID(ctx context.Context, key string) error {
	a.store.dispatch(coursesPending{})

	course, err := a.catalog.FetchCourseByID(ctx, key)
	if err != nil {
		a.store.dispatch(coursesRejected{msg: err.Error()})
		return err
	}

	a.store.dispatch(courseDetailFulfilled{course: course})
	return nil
}

// ToggleFavourite flips membership of id and persists the resulting list.
// If persistence fails the in-memory toggle is rolled back, so memory and
// storage cannot drift apart.
func (a *Actions) ToggleFavourite(ctx context.Context, id string) error {
	a.store.dispatch(favouriteToggled{id: id})

	if err := a.settings.Put(ctx, storage.KeyFavourites, a.store.Favourites()); err != nil {
		a.store.dispatch(favouriteToggled{id: id})
		a.log.Error(ctx, "failed to persist favourites, toggle rolled back", "id", id, "error", err)
		return err
	}
	return nil
}

// SaveFavourites replaces the favourite set wholesale and persists it.
// On persistence failure the previous set is restored.
func (a *Actions) SaveFavourites(ctx context.Context, ids []string) error {
	prev := a.store.Favourites()
	a.store.dispatch(favouritesReplaced{ids: ids})

	if err := a.settings.Put(ctx, storage.KeyFavourites, ids); err != nil {
		a.store.dispatch(favouritesReplaced{ids: prev})
		a.log.Error(ctx, "failed to persist favourites, replace rolled back", "error", err)
		return err
	}
	return nil
}

// LoadFavourites loads the persisted favourite set at process start. An
// absent or unreadable value loads as the empty set.
func (a *Actions) LoadFavourites(ctx context.Context) {
	var ids []string
	a.settings.Get(ctx, storage.KeyFavourites, &ids)
	if ids == nil {
		ids = []string{}
	}
	a.store.dispatch(favouritesReplaced{ids: ids})
}

// LoadTheme returns the persisted dark-mode flag, defaulting to light.
func (a *Actions) LoadTheme(ctx context.Context) bool {
	var dark bool
	a.settings.Get(ctx, storage.KeyTheme, &dark)
	return dark
}

// SaveTheme persists the dark-mode flag.
func (a *Actions) SaveTheme(ctx context.Context, dark bool) error {
	return a.settings.Put(ctx, storage.KeyTheme, dark)
}
