package schedule

import "github.com/limaJavier/semplanner/pkg/catalog"

type Planner interface {
	// Place returns every schedule obtained by inserting the course, together with the requirements it
	// transitively needs, into the given schedule. The given schedule is not modified. Results may repeat
	Place(
		id catalog.CourseID,
		schedule Schedule,
		courses *catalog.Catalog,
	) []Schedule

	// PlaceAll places the course into each of the schedules and concatenates the results
	PlaceAll(
		id catalog.CourseID,
		schedules []Schedule,
		courses *catalog.Catalog,
	) []Schedule

	// Verify checks that every requirement of every scheduled course is met
	Verify(
		schedule Schedule,
		courses *catalog.Catalog,
	) bool
}

// Place runs the exhaustive planner. Catalogs with requirement cycles make it recurse without end; use NewBoundedPlanner for untrusted catalogs
func Place(id catalog.CourseID, schedule Schedule, courses *catalog.Catalog) []Schedule {
	return NewExhaustivePlanner().Place(id, schedule, courses)
}

func PlaceAll(id catalog.CourseID, schedules []Schedule, courses *catalog.Catalog) []Schedule {
	return NewExhaustivePlanner().PlaceAll(id, schedules, courses)
}

func Verify(schedule Schedule, courses *catalog.Catalog) bool {
	return verify(schedule, courses)
}
