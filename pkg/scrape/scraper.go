package scrape

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
)

const (
	DefaultListingUrl = "http://catalog.rpi.edu/content.php?navoid=444&filter[cpage]=" // Followed by the page number
	DefaultCourseUrl  = "http://catalog.rpi.edu/preview_course.php?coid="               // Followed by the course preview id
	defaultWorkers    = 8
)

// Scraper builds a catalog from the listing and preview pages of a university's online course catalog
type Scraper struct {
	Client     *http.Client
	ListingUrl string
	CourseUrl  string
	Workers    int // Course pages fetched simultaneously
}

func NewScraper() *Scraper {
	return &Scraper{
		Client:     http.DefaultClient,
		ListingUrl: DefaultListingUrl,
		CourseUrl:  DefaultCourseUrl,
		Workers:    defaultWorkers,
	}
}

func (scraper *Scraper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := scraper.Client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status fetching %v: %v", url, response.Status)
	}
	return goquery.NewDocumentFromReader(response.Body)
}

// CourseIds walks the listing pages, starting at 1, until a page links no course
func (scraper *Scraper) CourseIds(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	for page := 1; ; page++ {
		document, err := scraper.fetch(ctx, scraper.ListingUrl+strconv.Itoa(page))
		if err != nil {
			return nil, fmt.Errorf("cannot fetch listing page %v: %w", page, err)
		}

		pageIds := ParseCourseIds(document)
		if len(pageIds) == 0 {
			break
		}
		ids = append(ids, pageIds...)
	}
	return lo.Uniq(ids), nil
}

func (scraper *Scraper) Course(ctx context.Context, previewId string) (catalog.RawCourse, error) {
	document, err := scraper.fetch(ctx, scraper.CourseUrl+previewId)
	if err != nil {
		return catalog.RawCourse{}, err
	}
	return ParseCoursePage(document)
}

// Catalog scrapes every listed course. Courses whose page cannot be fetched or parsed are logged and skipped
func (scraper *Scraper) Catalog(ctx context.Context) (catalog.RawCatalog, error) {
	previewIds, err := scraper.CourseIds(ctx)
	if err != nil {
		return catalog.RawCatalog{}, err
	}

	courses := make([]*catalog.RawCourse, len(previewIds))
	indices := make(chan int)
	var wg sync.WaitGroup

	for range max(scraper.Workers, 1) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indices {
				course, err := scraper.Course(ctx, previewIds[index])
				if err != nil {
					log.Printf("skipping course %v: %v", previewIds[index], err)
					continue
				}
				log.Printf("parsed: %v", course.Coid)
				courses[index] = &course
			}
		}()
	}

	for index := range previewIds {
		select {
		case indices <- index:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(indices)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return catalog.RawCatalog{}, err
	}

	// Keep the listing order
	parsed := lo.FilterMap(courses, func(course *catalog.RawCourse, _ int) (catalog.RawCourse, bool) {
		if course == nil {
			return catalog.RawCourse{}, false
		}
		return *course, true
	})
	return catalog.RawCatalog{Courses: parsed}, nil
}
