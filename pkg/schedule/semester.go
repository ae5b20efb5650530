package schedule

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
)

// Semester holds the set of courses taken at a given time
type Semester struct {
	time    SemTime
	courses map[catalog.CourseID]bool
}

func NewSemester(time SemTime, courses ...catalog.CourseID) Semester {
	semester := Semester{time: time, courses: make(map[catalog.CourseID]bool)}
	for _, course := range courses {
		semester.courses[course] = true
	}
	return semester
}

func (semester *Semester) AddCourse(id catalog.CourseID) {
	if semester.courses == nil {
		semester.courses = make(map[catalog.CourseID]bool)
	}
	semester.courses[id] = true
}

func (semester *Semester) RemoveCourse(id catalog.CourseID) {
	delete(semester.courses, id)
}

func (semester Semester) Contains(id catalog.CourseID) bool {
	return semester.courses[id]
}

func (semester Semester) Time() SemTime {
	return semester.time
}

func (semester Semester) Len() int {
	return len(semester.courses)
}

// Courses returns the semester's courses in ascending order
func (semester Semester) Courses() []catalog.CourseID {
	courses := lo.Keys(semester.courses)
	slices.SortFunc(courses, catalog.CourseID.Compare)
	return courses
}

func (semester Semester) Clone() Semester {
	return Semester{time: semester.time, courses: maps.Clone(semester.courses)}
}

func (semester Semester) Equal(other Semester) bool {
	return semester.time == other.time && maps.Equal(semester.courses, other.courses)
}

func (semester Semester) String() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%v:\n", semester.time)
	for _, course := range semester.Courses() {
		fmt.Fprintf(&builder, "\t%v\n", course)
	}
	return builder.String()
}
