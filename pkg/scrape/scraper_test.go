package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServer serves two listing pages followed by an empty one, and a preview page per course.
// Course 40003 is listed but its page is missing
func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	listings := map[string][]string{
		"1": {"40001", "40002"},
		"2": {"40002", "40003", "40004"},
	}
	courses := map[string]string{
		"40001": "CSCI 1100 - Computer Science I",
		"40002": "CSCI 1200 - Data Structures",
		"40004": "CSCI 2200 - Foundations of Computer Science",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/listing", func(w http.ResponseWriter, r *http.Request) {
		links := lo.Map(listings[r.URL.Query().Get("page")], func(id string, _ int) string {
			return fmt.Sprintf(`<a href="preview_course_nopop.php?catoid=22&amp;coid=%v">Course</a>`, id)
		})
		fmt.Fprintf(w, "<html><body>%v</body></html>", strings.Join(links, "\n"))
	})
	mux.HandleFunc("/course", func(w http.ResponseWriter, r *http.Request) {
		title, ok := courses[r.URL.Query().Get("coid")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `<html><body><table><tr><td class="block_content_popup"><h1>%v</h1>Description.</td></tr></table></body></html>`, title)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testScraper(server *httptest.Server) *Scraper {
	scraper := NewScraper()
	scraper.Client = server.Client()
	scraper.ListingUrl = server.URL + "/listing?page="
	scraper.CourseUrl = server.URL + "/course?coid="
	scraper.Workers = 2
	return scraper
}

func TestCourseIds(t *testing.T) {
	//** Arrange
	scraper := testScraper(catalogServer(t))

	//** Act
	ids, err := scraper.CourseIds(context.Background())

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"40001", "40002", "40003", "40004"}, ids)
}

func TestCourse(t *testing.T) {
	//** Arrange
	scraper := testScraper(catalogServer(t))

	//** Act
	course, err := scraper.Course(context.Background(), "40002")
	_, missingErr := scraper.Course(context.Background(), "40003")

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, catalog.NewCourseID("CSCI", 1200), course.Coid)
	assert.Equal(t, "Data Structures", course.Name)
	assert.Equal(t, "Description.", course.Description)
	assert.Error(t, missingErr)
}

func TestCatalog(t *testing.T) {
	//** Arrange
	scraper := testScraper(catalogServer(t))

	//** Act
	rawCatalog, err := scraper.Catalog(context.Background())

	//** Assert
	require.NoError(t, err)
	ids := lo.Map(rawCatalog.Courses, func(course catalog.RawCourse, _ int) string { return course.Coid.String() })
	assert.Equal(t, []string{"CSCI 1100", "CSCI 1200", "CSCI 2200"}, ids)

	courses, err := catalog.ProcessRawCatalog(rawCatalog)
	require.NoError(t, err)
	assert.Equal(t, 3, courses.Len())
}

func TestCatalogCancelled(t *testing.T) {
	//** Arrange
	scraper := testScraper(catalogServer(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	//** Act
	_, err := scraper.Catalog(ctx)

	//** Assert
	assert.Error(t, err)
}

func TestListingFailure(t *testing.T) {
	//** Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()
	scraper := testScraper(server)

	//** Act
	_, err := scraper.CourseIds(context.Background())

	//** Assert
	assert.Error(t, err)
}
