package store

import (
	"context"
	"os"
	"testing"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	csci1100 = catalog.NewCourseID("CSCI", 1100)
	csci1200 = catalog.NewCourseID("CSCI", 1200)
	csci2200 = catalog.NewCourseID("CSCI", 2200)
	csci2500 = catalog.NewCourseID("CSCI", 2500)
	math1010 = catalog.NewCourseID("MATH", 1010)
	math1020 = catalog.NewCourseID("MATH", 1020)
)

func foundations() catalog.RawCourse {
	return catalog.RawCourse{
		Coid:        csci2200,
		Name:        "Foundations of Computer Science",
		Offered:     "sf",
		Complete:    true,
		Prereqs:     [][]catalog.CourseID{{csci1200}, {math1010, math1020}},
		PrereqsOpt:  []catalog.CourseID{csci1100},
		Coreqs:      [][]catalog.CourseID{{csci2500}},
		CoreqsOpt:   []catalog.CourseID{},
		PostOptions: []catalog.CourseID{},
	}
}

func TestRequisiteRows(t *testing.T) {
	//** Act
	rows := requisiteRows(foundations())

	//** Assert
	assert.Equal(t, []requisiteRow{
		{Course: csci2200, Kind: prereqKind, GroupIndex: 0, Position: 0, Requisite: csci1200},
		{Course: csci2200, Kind: prereqKind, GroupIndex: 1, Position: 0, Requisite: math1010},
		{Course: csci2200, Kind: prereqKind, GroupIndex: 1, Position: 1, Requisite: math1020},
		{Course: csci2200, Kind: prereqOptKind, GroupIndex: 0, Position: 0, Requisite: csci1100},
		{Course: csci2200, Kind: coreqKind, GroupIndex: 0, Position: 0, Requisite: csci2500},
	}, rows)
}

func TestAssembleCourses(t *testing.T) {
	//** Arrange
	course := foundations()
	stored := storedCourse{RawCourse: course, PrereqGroups: len(course.Prereqs), CoreqGroups: len(course.Coreqs)}
	stored.Prereqs, stored.PrereqsOpt, stored.Coreqs = nil, nil, nil
	other := storedCourse{RawCourse: catalog.RawCourse{Coid: csci1100, Name: "Computer Science I"}}

	//** Act
	courses := assembleCourses([]storedCourse{other, stored}, requisiteRows(course))

	//** Assert
	require.Len(t, courses, 2)
	assert.Equal(t, csci1100, courses[0].Coid)
	assert.Empty(t, courses[0].Prereqs)
	assert.NotNil(t, courses[0].Prereqs)
	assert.Equal(t, course, courses[1])
}

func TestAssembleCoursesKeepsEmptyGroups(t *testing.T) {
	//** Arrange
	course := foundations()
	course.Prereqs = [][]catalog.CourseID{{}, {csci1200}, {}}
	course.Coreqs = [][]catalog.CourseID{{}}
	stored := storedCourse{RawCourse: course, PrereqGroups: len(course.Prereqs), CoreqGroups: len(course.Coreqs)}

	//** Act
	courses := assembleCourses([]storedCourse{stored}, requisiteRows(course))

	//** Assert
	require.Len(t, courses, 1)
	assert.Equal(t, [][]catalog.CourseID{{}, {csci1200}, {}}, courses[0].Prereqs)
	assert.Equal(t, [][]catalog.CourseID{{}}, courses[0].Coreqs)

	// An empty group stays unsatisfiable once loaded
	loaded, err := catalog.ProcessRawCatalog(catalog.RawCatalog{Courses: courses})
	require.NoError(t, err)
	loadedCourse, ok := loaded.Course(csci2200)
	require.True(t, ok)
	assert.Len(t, loadedCourse.Prereqs, 3)
	assert.Len(t, loadedCourse.Coreqs, 1)
}

func TestDatabaseRoundTrip(t *testing.T) {
	if os.Getenv(ConnectionStringVariable) == "" {
		t.Skipf("%v is not set", ConnectionStringVariable)
	}

	//** Arrange
	ctx := context.Background()
	database, err := Connect(ctx, "")
	require.NoError(t, err)
	defer database.Close()
	require.NoError(t, database.EnsureSchema(ctx))

	course := foundations()
	course.Prereqs = append(course.Prereqs, []catalog.CourseID{})

	//** Act
	require.NoError(t, database.InsertCourses(ctx, []catalog.RawCourse{course}))
	course.Name = "Foundations of CS"
	require.NoError(t, database.InsertCourses(ctx, []catalog.RawCourse{course}))
	courses, err := database.ListCourses(ctx)

	//** Assert
	require.NoError(t, err)
	for _, stored := range courses {
		if stored.Coid == csci2200 {
			assert.Equal(t, course, stored)
			return
		}
	}
	t.Fatalf("%v was not stored", csci2200)
}
