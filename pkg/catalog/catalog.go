package catalog

import (
	"slices"

	"github.com/samber/lo"
)

// Catalog stores every course offered by a university. Every course referenced as a prerequisite is
// present, as a placeholder course when its own record has not been added (yet)
type Catalog struct {
	courses map[CourseID]*Course
}

func NewCatalog() *Catalog {
	return &Catalog{courses: make(map[CourseID]*Course)}
}

// AddCourse inserts the course and registers it in the post-options of each of its prerequisites.
// A course already present is replaced except for its post-options, which are kept
func (catalog *Catalog) AddCourse(course Course) {
	if existing, ok := catalog.courses[course.Id]; ok {
		course.PostOptions = existing.PostOptions
	}

	for _, group := range course.Prereqs {
		for _, prereq := range group {
			if prereq == course.Id {
				course.addPostOption(course.Id)
				continue
			}

			if found, ok := catalog.courses[prereq]; ok {
				found.addPostOption(course.Id)
			} else {
				placeholder := NewCourse(prereq)
				placeholder.addPostOption(course.Id)
				catalog.courses[prereq] = &placeholder
			}
		}
	}

	catalog.courses[course.Id] = &course
}

// EmplaceCourse adds a placeholder course for id
func (catalog *Catalog) EmplaceCourse(id CourseID) {
	catalog.AddCourse(NewCourse(id))
}

// Course returns a copy of the course record. Its groups share memory with the stored record and must not be modified
func (catalog *Catalog) Course(id CourseID) (Course, bool) {
	course, ok := catalog.courses[id]
	if !ok {
		return Course{}, false
	}
	return *course, true
}

func (catalog *Catalog) MutableCourse(id CourseID) (*Course, bool) {
	course, ok := catalog.courses[id]
	return course, ok
}

func (catalog *Catalog) Len() int {
	return len(catalog.courses)
}

// Ids returns every course id in the catalog in ascending order
func (catalog *Catalog) Ids() []CourseID {
	ids := lo.Keys(catalog.courses)
	slices.SortFunc(ids, CourseID.Compare)
	return ids
}
