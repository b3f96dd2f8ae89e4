package models

// CourseStatus is a closed enumeration of catalog display states.
type CourseStatus string

const (
	StatusActive   CourseStatus = "Active"
	StatusUpcoming CourseStatus = "Upcoming"
	StatusPopular  CourseStatus = "Popular"
)

// Course is a browsable catalog item, built by transformation from an
// external payload at fetch time. It is immutable once placed into state
// and replaced wholesale on the next fetch.
//
// ID is globally unique by construction: a deterministic UUIDv5 derived
// from the upstream service namespace and the upstream record key, so two
// sources (or two subject pages) can never collide. SourceKey preserves the
// upstream identifier (e.g. "/works/OL45883W" or a product id) so detail
// fetches can be routed back to the originating service.
type Course struct {
	ID          string
	SourceKey   string
	Title       string
	Description string
	Category    string
	Thumbnail   string
	Price       float64
	Rating      float64
	Instructor  string
	Duration    string
	Level       string
	Status      CourseStatus
	PublishYear int
	Languages   []string
}
