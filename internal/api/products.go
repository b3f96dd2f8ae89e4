package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"skillup/internal/logging"
	"skillup/internal/models"
)

const productsNamespace = "dummyjson.com/products"

// ProductsClient is the legacy catalog variant that repackages a product
// listing as courses. Kept selectable through config for deployments still
// pointed at the product service.
type ProductsClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewProductsClient returns a legacy catalog client for the service at baseURL.
func NewProductsClient(baseURL string, timeout time.Duration, log logging.Logger) *ProductsClient {
	return &ProductsClient{
		baseURL: baseURL,
		http:    newHTTPClient(timeout),
		log:     log.With("component", "products_client"),
	}
}

type productPayload struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Thumbnail   string  `json:"thumbnail"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Brand       string  `json:"brand"`
}

type productListPayload struct {
	Products []productPayload `json:"products"`
}

// FetchCourses lists all products as courses. On any failure the fixed
// fallback sample set is returned with a nil error.
func (c *ProductsClient) FetchCourses(ctx context.Context) ([]models.Course, error) {
	resp, err := doGet(ctx, c.http, c.baseURL+"/products")
	if err != nil {
		c.log.Warn(ctx, "product listing fetch failed, serving fallback samples", "error", err)
		return FallbackCourses(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn(ctx, "product listing rejected, serving fallback samples", "status", resp.StatusCode)
		return FallbackCourses(), nil
	}

	var pl productListPayload
	if err := decodeJSON(resp.Body, &pl); err != nil {
		c.log.Warn(ctx, "product listing decode failed, serving fallback samples", "error", err)
		return FallbackCourses(), nil
	}

	courses := make([]models.Course, 0, len(pl.Products))
	for i, p := range pl.Products {
		courses = append(courses, courseFromProduct(p, statusFor(i)))
	}
	return courses, nil
}

// FetchCourseByID fetches a single product; key is the numeric product id as
// a string. Failures propagate; a 404 maps to ErrNotFound.
func (c *ProductsClient) FetchCourseByID(ctx context.Context, key string) (models.Course, error) {
	resp, err := doGet(ctx, c.http, c.baseURL+"/products/"+key)
	if err != nil {
		return models.Course{}, wrapTransport("get product "+key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Course{}, fmt.Errorf("product %s: %w", key, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Course{}, fmt.Errorf("product %s: unexpected status %d", key, resp.StatusCode)
	}

	var p productPayload
	if err := decodeJSON(resp.Body, &p); err != nil {
		return models.Course{}, err
	}
	// Single-item view always renders as Active, as the original did.
	return courseFromProduct(p, models.StatusActive), nil
}

func courseFromProduct(p productPayload, status models.CourseStatus) models.Course {
	key := strconv.FormatInt(p.ID, 10)
	seed := synthSeed(productsNamespace + "/" + key)

	instructor := p.Brand
	if instructor == "" {
		instructor = defaultInstructor
	}

	return models.Course{
		ID:          courseID(productsNamespace, key),
		SourceKey:   key,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Thumbnail:   p.Thumbnail,
		Price:       p.Price,
		Rating:      p.Rating,
		Instructor:  instructor,
		Duration:    synthDuration(seed),
		Level:       synthLevel(seed),
		Status:      status,
	}
}
