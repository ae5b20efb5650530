package catalog

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Group is a set of alternative courses: any single member satisfies it. Members keep the order in which they were first listed
type Group []CourseID

// NewGroup builds a group dropping repeated members
func NewGroup(ids ...CourseID) Group {
	return Group(lo.Uniq(ids))
}

func (group Group) Contains(id CourseID) bool {
	return slices.Contains(group, id)
}

// With returns the group extended by id, or the group itself when id is already a member
func (group Group) With(id CourseID) Group {
	if group.Contains(id) {
		return group
	}
	return append(slices.Clip(group), id)
}

type Course struct {
	Id          CourseID
	Complete    bool
	Name        string
	Description string
	Offered     string
	AgeReqs     string
	Prereqs     []Group // Every group must be satisfied by a course taken in an earlier semester
	PrereqsOpt  Group
	Coreqs      []Group // Every group must be satisfied by a course taken in the same semester
	CoreqsOpt   Group
	PostOptions Group // Courses listing this course as a prerequisite, maintained by the catalog
}

// NewCourse creates a placeholder course: no name, no requirements and incomplete data
func NewCourse(id CourseID) Course {
	return Course{
		Id:          id,
		Complete:    false,
		Prereqs:     []Group{},
		PrereqsOpt:  Group{},
		Coreqs:      []Group{},
		CoreqsOpt:   Group{},
		PostOptions: Group{},
	}
}

// AddPrereq appends a single-member prerequisite group
func (course *Course) AddPrereq(id CourseID) {
	course.Prereqs = append(course.Prereqs, NewGroup(id))
}

// AddCoreq appends a single-member corequisite group
func (course *Course) AddCoreq(id CourseID) {
	course.Coreqs = append(course.Coreqs, NewGroup(id))
}

func (course *Course) addPostOption(id CourseID) {
	course.PostOptions = course.PostOptions.With(id)
}

func (course Course) String() string {
	return fmt.Sprintf("%v: %v", course.Id, course.Name)
}
