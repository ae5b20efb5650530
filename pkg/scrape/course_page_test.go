package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<html><body>
<table class="table_default">
	<tr><td><a href="preview_course_nopop.php?catoid=22&amp;coid=41001">CSCI 1100 - Computer Science I</a></td></tr>
	<tr><td><a href="preview_course_nopop.php?catoid=22&amp;coid=41002">CSCI 1200 - Data Structures</a></td></tr>
	<tr><td><a href="preview_course_nopop.php?catoid=22&amp;coid=41001">CSCI 1100 - Computer Science I</a></td></tr>
	<tr><td><a href="content.php?navoid=444">Back to listing</a></td></tr>
</table>
</body></html>`

const coursePage = `<html><body><table><tr>
<td class="block_content_popup">
	<h1 id="course_preview_title">CSCI  2200 - Foundations of Computer Science</h1>
	<hr>
	Proof techniques, logic and discrete structures.<br>
	<strong>When Offered:</strong> Fall and spring terms annually.<br>
	<strong>Prerequisites/Corequisites:</strong> Prerequisites: CSCI 1200 and MATH 1010 or MATH 1020. Corequisite: CSCI 2500.<br>
	<strong>Credit Hours:</strong> 4
</td>
</tr></table></body></html>`

func document(t *testing.T, page string) *goquery.Document {
	t.Helper()
	document, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return document
}

func TestParseCourseIds(t *testing.T) {
	//** Act
	ids := ParseCourseIds(document(t, listingPage))

	//** Assert
	assert.Equal(t, []string{"41001", "41002"}, ids)
}

func TestParseCourseIdsEmptyPage(t *testing.T) {
	assert.Empty(t, ParseCourseIds(document(t, "<html><body><p>No results</p></body></html>")))
}

func TestParseCoursePage(t *testing.T) {
	//** Act
	course, err := ParseCoursePage(document(t, coursePage))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, catalog.NewCourseID("CSCI", 2200), course.Coid)
	assert.Equal(t, "Foundations of Computer Science", course.Name)
	assert.Equal(t, "Proof techniques, logic and discrete structures.", course.Description)
	assert.Equal(t, "sf", course.Offered)
	assert.True(t, course.Complete)
	assert.Equal(t, [][]catalog.CourseID{
		{catalog.NewCourseID("CSCI", 1200)},
		{catalog.NewCourseID("MATH", 1010), catalog.NewCourseID("MATH", 1020)},
	}, course.Prereqs)
	assert.Equal(t, [][]catalog.CourseID{{catalog.NewCourseID("CSCI", 2500)}}, course.Coreqs)
}

func TestParseCoursePageWithoutSections(t *testing.T) {
	//** Arrange
	page := `<html><body><table><tr><td class="block_content_popup">
		<h1>ARTS 1020 - Drawing</h1>
		<strong>Credit Hours:</strong> 4
	</td></tr></table></body></html>`

	//** Act
	course, err := ParseCoursePage(document(t, page))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, catalog.NewCourseID("ARTS", 1020), course.Coid)
	assert.Empty(t, course.Description)
	assert.Empty(t, course.Offered)
	assert.Empty(t, course.Prereqs)
	assert.Empty(t, course.Coreqs)
}

func TestParseCoursePageErrors(t *testing.T) {
	pages := map[string]string{
		"missing entry": `<html><body><p>Not found</p></body></html>`,
		"missing dash":  `<html><body><table><tr><td class="block_content_popup"><h1>CSCI 2200</h1></td></tr></table></body></html>`,
		"invalid id":    `<html><body><table><tr><td class="block_content_popup"><h1>CS 22 - Broken</h1></td></tr></table></body></html>`,
	}

	for name, page := range pages {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCoursePage(document(t, page))
			assert.Error(t, err)
		})
	}
}

func TestParseOffered(t *testing.T) {
	assert.Equal(t, "f", parseOffered("Fall term annually."))
	assert.Equal(t, "sue", parseOffered("Spring and summer terms of even-numbered years."))
	assert.Equal(t, "fo", parseOffered("Fall term of odd-numbered years"))
	assert.Equal(t, "", parseOffered("Upon availability of instructor"))
}

func TestParseRequisiteGroups(t *testing.T) {
	//** Act
	groups := parseRequisiteGroups("CSCI  1100 or CSCI 1010; MATH 1010 AND PHYS 1100 or PHYS 1100")

	//** Assert
	assert.Equal(t, [][]catalog.CourseID{
		{catalog.NewCourseID("CSCI", 1100), catalog.NewCourseID("CSCI", 1010)},
		{catalog.NewCourseID("MATH", 1010)},
		{catalog.NewCourseID("PHYS", 1100)},
	}, groups)
	assert.Empty(t, parseRequisiteGroups("Permission of instructor"))
}
