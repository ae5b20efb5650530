package scrape

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
	"golang.org/x/net/html"
)

const (
	offeredLabel    = "When Offered:"
	requisitesLabel = "Prerequisites/Corequisites:"
)

// Labels opening a section of a course page
var labels = []string{offeredLabel, requisitesLabel, "Credit Hours:", "Cross Listed:", "Course Attributes:"}

var (
	previewLinkRegex = regexp.MustCompile(`preview_course[^"]*[?&]coid=(\d+)`)
	courseIdRegex    = regexp.MustCompile(`[A-Z]{4} +\d{4}`)
	clauseRegex      = regexp.MustCompile(`(?i)\band\b|;`)
)

// ParseCourseIds extracts the preview ids of the courses linked by a catalog listing page
func ParseCourseIds(document *goquery.Document) []string {
	ids := make([]string, 0)
	document.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if match := previewLinkRegex.FindStringSubmatch(href); match != nil {
			ids = append(ids, match[1])
		}
	})
	return lo.Uniq(ids)
}

// ParseCoursePage extracts a course record from its catalog preview page
func ParseCoursePage(document *goquery.Document) (catalog.RawCourse, error) {
	entry := document.Find("td.block_content_popup").First()
	if entry.Length() == 0 {
		return catalog.RawCourse{}, errors.New("course entry not found")
	}

	//** Title
	title := strings.TrimSpace(entry.Find("h1").First().Text())
	idText, name, found := strings.Cut(title, "-")
	if !found {
		return catalog.RawCourse{}, fmt.Errorf("title \"%v\" is not in the \"SUBJ CODE - Name\" format", title)
	}
	coid, err := catalog.ParseCourseID(normalizeCourseId(idText))
	if err != nil {
		return catalog.RawCourse{}, err
	}

	course := catalog.RawCourse{
		Coid:        coid,
		Name:        strings.TrimSpace(name),
		Complete:    true,
		Prereqs:     [][]catalog.CourseID{},
		PrereqsOpt:  []catalog.CourseID{},
		Coreqs:      [][]catalog.CourseID{},
		CoreqsOpt:   []catalog.CourseID{},
		PostOptions: []catalog.CourseID{},
	}

	//** Body
	// Texts following the title: the description and then labelled sections
	var heading *html.Node
	if headings := entry.Find("h1"); headings.Length() > 0 {
		heading = headings.Nodes[0]
	}
	body := strippedStrings(entry.Nodes[0], heading)

	if len(body) > 0 && !isLabel(body[0]) {
		course.Description = body[0]
	}
	for i, text := range body {
		switch text {
		case offeredLabel:
			course.Offered = parseOffered(sectionText(body[i+1:]))
		case requisitesLabel:
			prereqsText, coreqsText, _ := strings.Cut(sectionText(body[i+1:]), "orequisite") // Case of the 'C' varies
			course.Prereqs = parseRequisiteGroups(prereqsText)
			course.Coreqs = parseRequisiteGroups(coreqsText)
		}
	}

	return course, nil
}

// strippedStrings returns the trimmed, non-empty text nodes below root in document order.
// When after is not nil, only the texts following the after subtree are returned
func strippedStrings(root *html.Node, after *html.Node) []string {
	texts := make([]string, 0)
	collecting := after == nil

	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if collecting && node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				texts = append(texts, text)
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if node == after {
			collecting = true
		}
	}
	walk(root)
	return texts
}

func isLabel(text string) bool {
	return lo.Contains(labels, text)
}

// sectionText joins the texts of a section up to the next label
func sectionText(texts []string) string {
	if _, index, found := lo.FindIndexOf(texts, isLabel); found {
		texts = texts[:index]
	}
	return strings.Join(texts, " ")
}

// parseOffered encodes seasons as 's', 'u' and 'f', followed by 'e' or 'o' for even or odd years only
func parseOffered(text string) string {
	lower := strings.ToLower(text)
	codes := []struct {
		word string
		code string
	}{
		{"spring", "s"},
		{"summer", "u"},
		{"fall", "f"},
		{"even", "e"},
		{"odd", "o"},
	}

	var builder strings.Builder
	for _, code := range codes {
		if strings.Contains(lower, code.word) {
			builder.WriteString(code.code)
		}
	}
	return builder.String()
}

// parseRequisiteGroups splits requisite text into clauses separated by "and" or ';'. The courses named in a clause are alternatives
func parseRequisiteGroups(text string) [][]catalog.CourseID {
	groups := make([][]catalog.CourseID, 0)
	for _, clause := range clauseRegex.Split(text, -1) {
		group := make([]catalog.CourseID, 0)
		for _, match := range courseIdRegex.FindAllString(clause, -1) {
			if id, err := catalog.ParseCourseID(normalizeCourseId(match)); err == nil {
				group = append(group, id)
			}
		}
		if group = lo.Uniq(group); len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func normalizeCourseId(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
