package schedule

import (
	"testing"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	csci1100 = catalog.NewCourseID("CSCI", 1100)
	csci1200 = catalog.NewCourseID("CSCI", 1200)
	math1010 = catalog.NewCourseID("MATH", 1010)
)

func TestDefaultSchedule(t *testing.T) {
	schedule := DefaultSchedule()

	assert.Equal(t, 8, schedule.Len())
	assert.Equal(t, DefaultTimes, schedule.Times())
	assert.Empty(t, schedule.Courses())
}

func TestAddSemesterKeepsChronologicalOrder(t *testing.T) {
	//** Arrange
	schedule := NewSchedule()

	//** Act
	schedule.AddSemester(NewSemester(Fall(1)))
	schedule.AddSemester(NewSemester(Spring(1)))
	schedule.AddSemester(NewSemester(Summer(1)))
	schedule.AddSemester(NewSemester(Spring(1), csci1100)) // Replaces the first Spring(1)

	//** Assert
	assert.Equal(t, []SemTime{Spring(1), Summer(1), Fall(1)}, schedule.Times())
	semester, ok := schedule.Semester(Spring(1))
	require.True(t, ok)
	assert.True(t, semester.Contains(csci1100))
}

func TestRemoveSemester(t *testing.T) {
	schedule := DefaultSchedule()

	schedule.RemoveSemester(Summer(2))
	schedule.RemoveSemester(Summer(3)) // Absent

	assert.Equal(t, 7, schedule.Len())
	_, ok := schedule.Semester(Summer(2))
	assert.False(t, ok)
}

func TestScheduleAddCourse(t *testing.T) {
	schedule := DefaultSchedule()

	assert.False(t, schedule.AddCourse(Summer(1), csci1100), "there is no semester at Summer 1")
	assert.False(t, schedule.Contains(csci1100))

	assert.True(t, schedule.AddCourse(Fall(0), csci1100))
	assert.True(t, schedule.AddCourse(Fall(0), csci1100))
	assert.True(t, schedule.AddCourse(Spring(1), csci1200))

	semester, ok := schedule.Semester(Fall(0))
	require.True(t, ok)
	assert.Equal(t, 1, semester.Len())

	time, ok := schedule.Time(csci1200)
	require.True(t, ok)
	assert.Equal(t, Spring(1), time)

	_, ok = schedule.Time(math1010)
	assert.False(t, ok)
	assert.Equal(t, []catalog.CourseID{csci1100, csci1200}, schedule.Courses())
}

func TestCloneIsIndependent(t *testing.T) {
	//** Arrange
	original := DefaultSchedule()
	original.AddCourse(Fall(0), csci1100)

	//** Act
	clone := original.Clone()
	clone.AddCourse(Fall(0), csci1200)
	clone.AddSemester(NewSemester(Summer(1)))

	//** Assert
	assert.False(t, original.Contains(csci1200))
	assert.Equal(t, 8, original.Len())
	assert.False(t, original.Equal(clone))
	assert.True(t, original.Equal(original.Clone()))
}

func TestSemesterOperations(t *testing.T) {
	semester := NewSemester(Fall(2), math1010)

	semester.AddCourse(csci1200)
	semester.AddCourse(csci1100)
	semester.RemoveCourse(math1010)
	semester.RemoveCourse(math1010)

	assert.Equal(t, Fall(2), semester.Time())
	assert.False(t, semester.Contains(math1010))
	assert.Equal(t, []catalog.CourseID{csci1100, csci1200}, semester.Courses())
	assert.Equal(t, "Fall 2:\n\tCSCI 1100\n\tCSCI 1200\n", semester.String())

	var empty Semester
	empty.AddCourse(csci1100)
	assert.True(t, empty.Contains(csci1100))
}

func TestScheduleString(t *testing.T) {
	schedule := FromTimes([]SemTime{Fall(0), Spring(1)})
	schedule.AddCourse(Spring(1), csci1200)
	schedule.AddCourse(Fall(0), csci1100)

	assert.Equal(t, "Fall 0:\n\tCSCI 1100\nSpring 1:\n\tCSCI 1200\n", schedule.String())
}

func TestUnique(t *testing.T) {
	first := DefaultSchedule()
	first.AddCourse(Fall(0), csci1100)
	second := DefaultSchedule()
	second.AddCourse(Spring(1), csci1100)

	unique := Unique([]Schedule{first, second, first.Clone(), second.Clone(), first})

	require.Len(t, unique, 2)
	assert.True(t, unique[0].Equal(first))
	assert.True(t, unique[1].Equal(second))
}
