package schedule

import (
	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
)

// placementSearch holds the state shared by the recursive calls of a single placement
type placementSearch struct {
	courses  *catalog.Catalog
	maxDepth int // Zero means unbounded
	pruned   int // Branches abandoned because of maxDepth
}

func (search *placementSearch) place(id catalog.CourseID, schedule Schedule, depth int) []Schedule {
	course, ok := search.courses.Course(id)
	if !ok {
		return []Schedule{}
	}
	if search.maxDepth > 0 && depth > search.maxDepth {
		search.pruned++
		return []Schedule{}
	}

	//** Place prerequisites
	// Every group must be satisfied; each member of a group opens its own branch
	candidates := []Schedule{schedule}
	for _, group := range course.Prereqs {
		candidates = search.expand(group, candidates, depth, func(Schedule, catalog.CourseID, Schedule) bool { return true })
	}

	//** Place the course itself at every semester that admits it
	placed := make([]Schedule, 0, len(candidates))
	for _, candidate := range candidates {
		for _, time := range candidate.Times() {
			if next, ok := tryAdd(course, time, candidate); ok {
				placed = append(placed, next)
			}
		}
	}

	//** Place corequisites
	// A corequisite placed here is only kept where it shares the course's semester
	sameSemester := func(before Schedule, member catalog.CourseID, after Schedule) bool {
		courseTime, _ := before.Time(id)
		memberTime, ok := after.Time(member)
		return ok && memberTime == courseTime
	}
	for _, group := range course.Coreqs {
		placed = search.expand(group, placed, depth, sameSemester)
	}

	return placed
}

// expand fans every schedule out over the members of the group: schedules already containing a member
// are kept as copies, otherwise the member is placed and every result accepted by keep is collected
func (search *placementSearch) expand(
	group catalog.Group,
	schedules []Schedule,
	depth int,
	keep func(before Schedule, member catalog.CourseID, after Schedule) bool,
) []Schedule {
	expanded := make([]Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		for _, member := range group {
			if schedule.Contains(member) {
				expanded = append(expanded, schedule.Clone())
				continue
			}

			for _, option := range search.place(member, schedule, depth+1) {
				if keep(schedule, member, option) {
					expanded = append(expanded, option)
				}
			}
		}
	}
	return expanded
}

// tryAdd places the course at the given time when its requirements allow it. A course already in the schedule is accepted as is.
// The returned schedule never shares memory with the given one
func tryAdd(course catalog.Course, time SemTime, schedule Schedule) (Schedule, bool) {
	if schedule.Contains(course.Id) {
		return schedule.Clone(), true
	}

	// Scheduled corequisites must all be taken at the same time as the course; unscheduled ones are placed afterwards
	for _, group := range course.Coreqs {
		if lo.SomeBy(group, func(coreq catalog.CourseID) bool {
			coreqTime, ok := schedule.Time(coreq)
			return ok && coreqTime != time
		}) {
			return Schedule{}, false
		}
	}

	// Every prerequisite group needs a member taken strictly before
	for _, group := range course.Prereqs {
		if !takenBefore(schedule, group, time) {
			return Schedule{}, false
		}
	}

	next := schedule.Clone()
	next.AddCourse(time, course.Id)
	return next, true
}

func takenBefore(schedule Schedule, group catalog.Group, time SemTime) bool {
	return lo.SomeBy(group, func(id catalog.CourseID) bool {
		scheduledAt, ok := schedule.Time(id)
		return ok && scheduledAt.Before(time)
	})
}

func takenAt(schedule Schedule, group catalog.Group, time SemTime) bool {
	return lo.SomeBy(group, func(id catalog.CourseID) bool {
		scheduledAt, ok := schedule.Time(id)
		return ok && scheduledAt == time
	})
}

// verify checks that no course is scheduled twice and that every scheduled course known to the catalog
// has, for each prerequisite group, a member taken earlier and, for each corequisite group, a member taken alongside
func verify(schedule Schedule, courses *catalog.Catalog) bool {
	for _, semester := range schedule.semesters {
		for _, id := range semester.Courses() {
			//** Check uniqueness
			if firstTime, _ := schedule.Time(id); firstTime != semester.time {
				return false
			}

			course, ok := courses.Course(id)
			if !ok {
				continue
			}

			//** Check requirements
			if !lo.EveryBy(course.Prereqs, func(group catalog.Group) bool { return takenBefore(schedule, group, semester.time) }) ||
				!lo.EveryBy(course.Coreqs, func(group catalog.Group) bool { return takenAt(schedule, group, semester.time) }) {
				return false
			}
		}
	}
	return true
}
