package schedule

import (
	"slices"
	"strings"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
)

// Schedule is a chronologically ordered collection of semesters, at most one per time.
// Values produced by the planners are never modified afterwards; use Clone before mutating a shared schedule
type Schedule struct {
	semesters []Semester // Sorted by time
}

func NewSchedule(semesters ...Semester) Schedule {
	schedule := Schedule{semesters: make([]Semester, 0, len(semesters))}
	for _, semester := range semesters {
		schedule.AddSemester(semester)
	}
	return schedule
}

// DefaultTimes is the planning horizon of a four-year program
var DefaultTimes = []SemTime{
	Fall(0), Spring(1),
	Fall(1), Spring(2),
	Summer(2), Fall(2),
	Fall(3), Spring(4),
}

// DefaultSchedule returns an empty schedule spanning DefaultTimes
func DefaultSchedule() Schedule {
	return FromTimes(DefaultTimes)
}

// FromTimes returns a schedule with an empty semester at each time
func FromTimes(times []SemTime) Schedule {
	return NewSchedule(lo.Map(times, func(time SemTime, _ int) Semester { return NewSemester(time) })...)
}

func (schedule Schedule) search(time SemTime) (int, bool) {
	return slices.BinarySearchFunc(schedule.semesters, time, func(semester Semester, time SemTime) int {
		return semester.time.Compare(time)
	})
}

// AddSemester inserts the semester, replacing any semester at the same time
func (schedule *Schedule) AddSemester(semester Semester) {
	index, found := schedule.search(semester.time)
	if found {
		schedule.semesters[index] = semester
		return
	}
	schedule.semesters = slices.Insert(schedule.semesters, index, semester)
}

func (schedule *Schedule) RemoveSemester(time SemTime) {
	if index, found := schedule.search(time); found {
		schedule.semesters = slices.Delete(schedule.semesters, index, index+1)
	}
}

// AddCourse places the course at the semester of the given time; it fails when there is no such semester
func (schedule *Schedule) AddCourse(time SemTime, id catalog.CourseID) bool {
	index, found := schedule.search(time)
	if !found {
		return false
	}
	schedule.semesters[index].AddCourse(id)
	return true
}

// Semester returns the semester at the given time. Modifying it modifies the schedule
func (schedule Schedule) Semester(time SemTime) (*Semester, bool) {
	index, found := schedule.search(time)
	if !found {
		return nil, false
	}
	return &schedule.semesters[index], true
}

// Semesters returns copies of the semesters in chronological order
func (schedule Schedule) Semesters() []Semester {
	return lo.Map(schedule.semesters, func(semester Semester, _ int) Semester { return semester.Clone() })
}

// Times returns the time of every semester in chronological order
func (schedule Schedule) Times() []SemTime {
	return lo.Map(schedule.semesters, func(semester Semester, _ int) SemTime { return semester.time })
}

func (schedule Schedule) Len() int {
	return len(schedule.semesters)
}

func (schedule Schedule) Contains(id catalog.CourseID) bool {
	_, ok := schedule.Time(id)
	return ok
}

// Time returns the time of the earliest semester containing the course
func (schedule Schedule) Time(id catalog.CourseID) (SemTime, bool) {
	for _, semester := range schedule.semesters {
		if semester.Contains(id) {
			return semester.time, true
		}
	}
	return SemTime{}, false
}

// Courses returns every scheduled course, chronologically and in ascending order within a semester
func (schedule Schedule) Courses() []catalog.CourseID {
	return lo.FlatMap(schedule.semesters, func(semester Semester, _ int) []catalog.CourseID { return semester.Courses() })
}

func (schedule Schedule) Clone() Schedule {
	return Schedule{semesters: schedule.Semesters()}
}

func (schedule Schedule) Equal(other Schedule) bool {
	return slices.EqualFunc(schedule.semesters, other.semesters, Semester.Equal)
}

func (schedule Schedule) String() string {
	var builder strings.Builder
	for _, semester := range schedule.semesters {
		builder.WriteString(semester.String())
	}
	return builder.String()
}

// Unique drops schedules structurally equal to an earlier one, keeping the first occurrence
func Unique(schedules []Schedule) []Schedule {
	return lo.UniqBy(schedules, func(schedule Schedule) string { return schedule.String() })
}
