package cli

import (
	"context"
	"fmt"
)

// fav toggles favourite membership for the nth listed course. The action
// persists the set and rolls the toggle back if persistence fails.
func (a *App) fav(ctx context.Context, args []string) {
	c, ok := a.courseAt(args)
	if !ok {
		return
	}
	if err := a.actions.ToggleFavourite(ctx, c.ID); err != nil {
		a.printf("error: could not save favourites: %v\n", err)
		return
	}
	if a.store.IsFavourite(c.ID) {
		a.printf("Added to favourites: %s\n", c.Title)
	} else {
		a.printf("Removed from favourites: %s\n", c.Title)
	}
}

// favs lists the favourite courses. Favourites whose course is not in the
// current listing are shown by id so the set is always fully visible.
func (a *App) favs() {
	ids := a.store.Favourites()
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "No favourites yet")
		return
	}

	byID := map[string]string{}
	for _, c := range a.store.Courses().Courses {
		byID[c.ID] = c.Title
	}
	for _, id := range ids {
		if title, ok := byID[id]; ok {
			a.printf("  * %s\n", title)
		} else {
			a.printf("  * %s\n", id)
		}
	}
}
