package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"skillup/internal/logging"
	"skillup/internal/models"
)

const openLibraryNamespace = "openlibrary.org"

// DefaultSubjects are the fixed category subjects the course listing fans
// out across.
var DefaultSubjects = []string{"programming", "business", "design", "science"}

// DefaultSubjectLimit caps the page size of each subject request.
const DefaultSubjectLimit = 8

// coverURL renders a cover image id into a browsable thumbnail URL.
func coverURL(coverID int64) string {
	if coverID == 0 {
		return ""
	}
	return fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", coverID)
}

// OpenLibraryClient serves the course catalog from an open book API:
// one subject page per configured subject, flattened into a single course
// list in subject order.
type OpenLibraryClient struct {
	baseURL  string
	http     *http.Client
	subjects []string
	limit    int
	log      logging.Logger
}

// NewOpenLibraryClient returns a catalog client for the service at baseURL.
// Nil subjects / non-positive limit fall back to the defaults.
func NewOpenLibraryClient(baseURL string, timeout time.Duration, subjects []string, limit int, log logging.Logger) *OpenLibraryClient {
	if len(subjects) == 0 {
		subjects = DefaultSubjects
	}
	if limit <= 0 {
		limit = DefaultSubjectLimit
	}
	return &OpenLibraryClient{
		baseURL:  baseURL,
		http:     newHTTPClient(timeout),
		subjects: subjects,
		limit:    limit,
		log:      log.With("component", "catalog_client"),
	}
}

type subjectPayload struct {
	Works []workPayload `json:"works"`
}

type workPayload struct {
	Key              string          `json:"key"`
	Title            string          `json:"title"`
	CoverID          int64           `json:"cover_id"`
	Authors          []authorPayload `json:"authors"`
	FirstPublishYear int             `json:"first_publish_year"`
}

type authorPayload struct {
	Name string `json:"name"`
}

// workDetailPayload is the single-work response. Description comes back
// either as a plain string or as a {type, value} object, so it is decoded
// from raw JSON.
type workDetailPayload struct {
	Key              string          `json:"key"`
	Title            string          `json:"title"`
	Description      json.RawMessage `json:"description"`
	Covers           []int64         `json:"covers"`
	Subjects         []string        `json:"subjects"`
	FirstPublishDate string          `json:"first_publish_date"`
}

func decodeDescription(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}
	return ""
}

// FetchCourses fans out one request per subject and flattens the results in
// subject order. Any failure fails the whole group (sibling requests are
// cancelled) and the fixed fallback sample set is returned with a nil error:
// the listing never hard-fails.
func (c *OpenLibraryClient) FetchCourses(ctx context.Context) ([]models.Course, error) {
	results := make([][]models.Course, len(c.subjects))

	g, gctx := errgroup.WithContext(ctx)
	for i, subject := range c.subjects {
		g.Go(func() error {
			works, err := c.fetchSubject(gctx, subject)
			if err != nil {
				return err
			}
			courses := make([]models.Course, 0, len(works))
			for j, w := range works {
				courses = append(courses, courseFromWork(subject, w, j))
			}
			results[i] = courses
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.log.Warn(ctx, "course listing fetch failed, serving fallback samples", "error", err)
		return FallbackCourses(), nil
	}

	var courses []models.Course
	for _, r := range results {
		courses = append(courses, r...)
	}
	c.log.Info(ctx, "course listing fetched", "subjects", len(c.subjects), "courses", len(courses))
	return courses, nil
}

func (c *OpenLibraryClient) fetchSubject(ctx context.Context, subject string) ([]workPayload, error) {
	u := fmt.Sprintf("%s/subjects/%s.json?limit=%d", c.baseURL, url.PathEscape(subject), c.limit)

	resp, err := doGet(ctx, c.http, u)
	if err != nil {
		return nil, wrapTransport("get subject "+subject, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subject %s: unexpected status %d", subject, resp.StatusCode)
	}

	var sp subjectPayload
	if err := decodeJSON(resp.Body, &sp); err != nil {
		return nil, err
	}
	return sp.Works, nil
}

// FetchCourseByID fetches a single work by its upstream key (the SourceKey
// of a listed course, e.g. "/works/OL45883W"). Unlike the bulk fetch it
// propagates failures; a 404 maps to ErrNotFound.
func (c *OpenLibraryClient) FetchCourseByID(ctx context.Context, key string) (models.Course, error) {
	if !strings.HasPrefix(key, "/") {
		key = "/works/" + key
	}

	resp, err := doGet(ctx, c.http, c.baseURL+key+".json")
	if err != nil {
		return models.Course{}, wrapTransport("get work "+key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Course{}, fmt.Errorf("work %s: %w", key, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Course{}, fmt.Errorf("work %s: unexpected status %d", key, resp.StatusCode)
	}

	var wd workDetailPayload
	if err := decodeJSON(resp.Body, &wd); err != nil {
		return models.Course{}, err
	}
	return courseFromWorkDetail(wd), nil
}

func courseFromWork(subject string, w workPayload, ordinal int) models.Course {
	seed := synthSeed(w.Key)

	instructor := defaultInstructor
	if len(w.Authors) > 0 && w.Authors[0].Name != "" {
		instructor = w.Authors[0].Name
	}

	return models.Course{
		ID:          courseID(openLibraryNamespace, subject+w.Key),
		SourceKey:   w.Key,
		Title:       w.Title,
		Description: fmt.Sprintf("A guided reading course on %s, built around %q.", subject, w.Title),
		Category:    subject,
		Thumbnail:   coverURL(w.CoverID),
		Price:       synthPrice(seed),
		Rating:      synthRating(seed),
		Instructor:  instructor,
		Duration:    synthDuration(seed),
		Level:       synthLevel(seed),
		Status:      statusFor(ordinal),
		PublishYear: w.FirstPublishYear,
	}
}

func courseFromWorkDetail(wd workDetailPayload) models.Course {
	seed := synthSeed(wd.Key)

	category := ""
	if len(wd.Subjects) > 0 {
		category = wd.Subjects[0]
	}
	thumbnail := ""
	if len(wd.Covers) > 0 {
		thumbnail = coverURL(wd.Covers[0])
	}
	description := decodeDescription(wd.Description)
	if description == "" {
		description = fmt.Sprintf("A guided reading course built around %q.", wd.Title)
	}

	return models.Course{
		ID:          courseID(openLibraryNamespace, wd.Key),
		SourceKey:   wd.Key,
		Title:       wd.Title,
		Description: description,
		Category:    category,
		Thumbnail:   thumbnail,
		Price:       synthPrice(seed),
		Rating:      synthRating(seed),
		Instructor:  defaultInstructor,
		Duration:    synthDuration(seed),
		Level:       synthLevel(seed),
		Status:      models.StatusActive,
	}
}
