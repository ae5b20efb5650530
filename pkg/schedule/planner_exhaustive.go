package schedule

import (
	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
)

type exhaustivePlanner struct{}

func NewExhaustivePlanner() Planner {
	return &exhaustivePlanner{}
}

func (planner *exhaustivePlanner) Place(id catalog.CourseID, schedule Schedule, courses *catalog.Catalog) []Schedule {
	search := &placementSearch{courses: courses}
	return search.place(id, schedule, 0)
}

func (planner *exhaustivePlanner) PlaceAll(id catalog.CourseID, schedules []Schedule, courses *catalog.Catalog) []Schedule {
	return lo.FlatMap(schedules, func(schedule Schedule, _ int) []Schedule {
		return planner.Place(id, schedule, courses)
	})
}

func (planner *exhaustivePlanner) Verify(schedule Schedule, courses *catalog.Catalog) bool {
	return verify(schedule, courses)
}
