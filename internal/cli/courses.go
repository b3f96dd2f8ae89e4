package cli

import (
	"context"
	"fmt"
	"strconv"

	"skillup/internal/models"
)

// courses refreshes the catalog and lists it. The catalog client falls back
// to bundled samples on upstream failure, so the listing itself never errors;
// a slice error can still appear from an earlier detail fetch and is cleared
// after rendering.
func (a *App) courses(ctx context.Context) {
	if err := a.actions.FetchCourses(ctx); err != nil {
		a.renderCoursesError()
		return
	}

	cs := a.store.Courses().Courses
	if len(cs) == 0 {
		fmt.Fprintln(a.out, "No courses available")
		return
	}
	for i, c := range cs {
		marker := " "
		if a.store.IsFavourite(c.ID) {
			marker = "*"
		}
		a.printf("%3d %s %-45s %-12s %-12s $%.2f\n", i+1, marker, truncate(c.Title, 45), c.Category, c.Level, c.Price)
	}
}

// show renders the nth course from the current listing without any network
// round trip and records it as the selection.
func (a *App) show(args []string) {
	c, ok := a.courseAt(args)
	if !ok {
		return
	}
	a.store.SelectCourse(c.ID)
	a.renderCourse(c)
}

// open fetches fresh detail by upstream key. Unlike the listing, a failure
// here is loud: the message lands in the courses slice and is shown once.
func (a *App) open(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: open <key>")
		return
	}
	if err := a.actions.FetchCourseByID(ctx, args[0]); err != nil {
		a.renderCoursesError()
		return
	}
	if c := a.store.Courses().SelectedCourse; c != nil {
		a.renderCourse(*c)
	}
}

func (a *App) renderCourse(c models.Course) {
	a.printf("%s\n", c.Title)
	a.printf("  instructor: %s\n", c.Instructor)
	a.printf("  category:   %s\n", c.Category)
	a.printf("  level:      %s (%s)\n", c.Level, c.Duration)
	a.printf("  rating:     %.1f\n", c.Rating)
	a.printf("  price:      $%.2f\n", c.Price)
	a.printf("  status:     %s\n", c.Status)
	if c.Description != "" {
		a.printf("  %s\n", truncate(c.Description, 200))
	}
	if a.store.IsFavourite(c.ID) {
		fmt.Fprintln(a.out, "  (favourite)")
	}
}

func (a *App) renderCoursesError() {
	if msg := a.store.Courses().Err; msg != "" {
		a.printf("error: %s\n", msg)
		a.store.ClearCoursesError()
	}
}

// courseAt resolves a 1-based listing index from args.
func (a *App) courseAt(args []string) (models.Course, bool) {
	cs := a.store.Courses().Courses
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <n> (run 'courses' first)")
		return models.Course{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(cs) {
		a.printf("No such course: %s\n", args[0])
		return models.Course{}, false
	}
	return cs[n-1], true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
