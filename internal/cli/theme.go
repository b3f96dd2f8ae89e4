package cli

import (
	"context"
	"fmt"
)

// theme toggles between light and dark mode and persists the choice.
func (a *App) theme(ctx context.Context) {
	a.dark = !a.dark
	if err := a.actions.SaveTheme(ctx, a.dark); err != nil {
		a.printf("warning: could not save theme: %v\n", err)
	}
	if a.dark {
		fmt.Fprintln(a.out, "Switched to dark mode")
	} else {
		fmt.Fprintln(a.out, "Switched to light mode")
	}
}
