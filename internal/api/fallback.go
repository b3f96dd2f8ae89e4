package api

import "skillup/internal/models"

// sampleNamespace scopes the ids of built-in fallback courses so they can
// never collide with ids synthesized from upstream records.
const sampleNamespace = "skillup:sample"

// FallbackCourses is the fixed substitute dataset served when a live
// course-listing fetch fails entirely. The listing screen renders these two
// instead of an error.
func FallbackCourses() []models.Course {
	return []models.Course{
		{
			ID:          courseID(sampleNamespace, "go-foundations"),
			SourceKey:   "sample/go-foundations",
			Title:       "Go Foundations",
			Description: "Build a solid base in Go: syntax, tooling, testing and the standard library.",
			Category:    "programming",
			Thumbnail:   "",
			Price:       29.99,
			Rating:      4.7,
			Instructor:  "Expert Instructor",
			Duration:    "12 hours",
			Level:       "Beginner",
			Status:      models.StatusActive,
			PublishYear: 2023,
			Languages:   []string{"eng"},
		},
		{
			ID:          courseID(sampleNamespace, "product-design-basics"),
			SourceKey:   "sample/product-design-basics",
			Title:       "Product Design Basics",
			Description: "From user research to high-fidelity prototypes in a single guided project.",
			Category:    "design",
			Thumbnail:   "",
			Price:       24.99,
			Rating:      4.5,
			Instructor:  "Expert Instructor",
			Duration:    "8 hours",
			Level:       "Intermediate",
			Status:      models.StatusPopular,
			PublishYear: 2022,
			Languages:   []string{"eng"},
		},
	}
}
