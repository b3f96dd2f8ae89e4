package api

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"skillup/internal/models"
)

var levels = [...]string{"Beginner", "Intermediate", "Advanced"}

var statuses = [...]models.CourseStatus{
	models.StatusActive,
	models.StatusUpcoming,
	models.StatusPopular,
}

const defaultInstructor = "Expert Instructor"

// courseID derives a globally unique, deterministic course id from the
// source namespace and the upstream record key (UUIDv5). Records fetched
// twice get the same id; records from different sources never collide.
func courseID(namespace, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(namespace+"/"+key)).String()
}

// synthSeed hashes the upstream key into a stable seed for synthesized
// display fields. The upstream catalog has no duration/level/rating of its
// own, but the UI always needs displayable values, so they are derived
// deterministically from the record identity instead of rolled at random.
func synthSeed(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32()
}

func synthDuration(seed uint32) string {
	return fmt.Sprintf("%d hours", 5+seed%20)
}

func synthLevel(seed uint32) string {
	return levels[seed%uint32(len(levels))]
}

func synthRating(seed uint32) float64 {
	return 3.5 + float64(seed%15)/10
}

func synthPrice(seed uint32) float64 {
	return float64(10+seed%90) + 0.99
}

// statusFor cycles the closed status enum by list position, matching how the
// original listing spread Active/Upcoming/Popular across the page.
func statusFor(ordinal int) models.CourseStatus {
	return statuses[ordinal%len(statuses)]
}
