package schedule

import (
	"log"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
)

// boundedPlanner behaves as the exhaustive planner but abandons every branch that has to place
// requirements more than maxDepth levels below the requested course
type boundedPlanner struct {
	maxDepth int
}

func NewBoundedPlanner(maxDepth int) Planner {
	if maxDepth <= 0 {
		return NewExhaustivePlanner()
	}
	return &boundedPlanner{maxDepth: maxDepth}
}

func (planner *boundedPlanner) Place(id catalog.CourseID, schedule Schedule, courses *catalog.Catalog) []Schedule {
	search := &placementSearch{courses: courses, maxDepth: planner.maxDepth}
	schedules := search.place(id, schedule, 0)

	if search.pruned > 0 {
		log.Printf("placing %v: %v branch(es) deeper than %v requirement levels were abandoned", id, search.pruned, planner.maxDepth)
	}
	return schedules
}

func (planner *boundedPlanner) PlaceAll(id catalog.CourseID, schedules []Schedule, courses *catalog.Catalog) []Schedule {
	return lo.FlatMap(schedules, func(schedule Schedule, _ int) []Schedule {
		return planner.Place(id, schedule, courses)
	})
}

func (planner *boundedPlanner) Verify(schedule Schedule, courses *catalog.Catalog) bool {
	return verify(schedule, courses)
}
