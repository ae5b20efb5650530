package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/limaJavier/semplanner/pkg/config"
	"github.com/limaJavier/semplanner/pkg/schedule"
	"github.com/limaJavier/semplanner/pkg/store"
)

func main() {
	// Define arguments
	catalogFilePathPtr := flag.String("catalog", "", "Path to the catalog file")
	scheduleFilePathPtr := flag.String("schedule", "", "Path to a file of previously planned schedules to start from; if empty, the configured horizon is used")
	outFilePathPtr := flag.String("out", "", "Path to the file where the resulting schedules will be written")
	configFilePathPtr := flag.String("config", "", "Path to a .json, .yaml or .yml config file; if empty, a config file next to the executable is used when present")
	depthPtr := flag.Int("depth", -1, "Maximum requirement depth explored per course, where 0 means unbounded; overrides the config's max_depth")
	uniquePtr := flag.Bool("unique", false, "Drop repeated schedules after each course")
	pickPtr := flag.Bool("pick", false, "Interactively pick a single resulting schedule to write")
	databasePtr := flag.Bool("db", false, "Load the catalog from PostgreSQL instead of a file")
	connectionStringPtr := flag.String("connection", "", "PostgreSQL connection string; if empty, DATABASE_CONNECTION_STRING is used")
	flag.Parse()

	// Validate arguments
	if *catalogFilePathPtr == "" && !*databasePtr {
		log.Fatal("a catalog file must be specified")
	} else if *catalogFilePathPtr != "" && *databasePtr {
		log.Fatal("a catalog file and a database cannot be used together")
	} else if *pickPtr && *outFilePathPtr == "" {
		log.Fatal("an output file must be specified to pick a schedule")
	}

	// Extract input
	conf := loadConfig(*configFilePathPtr)
	if *depthPtr >= 0 {
		conf.MaxDepth = *depthPtr
	}
	conf.Unique = conf.Unique || *uniquePtr

	courses := loadCatalog(*catalogFilePathPtr, *databasePtr, *connectionStringPtr)
	schedules := loadSchedules(*scheduleFilePathPtr, conf)

	// Place courses
	planner := conf.Planner()
	for _, arg := range flag.Args() {
		id, err := catalog.ParseCourseID(arg)
		if err != nil {
			log.Printf("skipping course: %v", err)
			continue
		}

		schedules = planner.PlaceAll(id, schedules, courses)
		if conf.Unique {
			schedules = schedule.Unique(schedules)
		}
		fmt.Print(renderPlacement(id, schedules))
	}

	// Verify schedules correctness
	for i, result := range schedules {
		if !planner.Verify(result, courses) {
			fmt.Print(renderFailure(i, result))
			os.Exit(15)
		}
	}

	if *outFilePathPtr == "" {
		return
	}

	if *pickPtr {
		picked, ok, err := pickSchedule(schedules)
		if err != nil {
			log.Fatalf("an error occurred while picking a schedule: %v", err)
		} else if !ok {
			log.Fatal("no schedule was picked")
		}
		schedules = []schedule.Schedule{picked}
	}

	if err := schedule.WriteSchedules(*outFilePathPtr, schedules); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}

func loadConfig(file string) config.Config {
	if file == "" {
		located, ok := config.Locate()
		if !ok {
			return config.Default()
		}
		file = located
	}

	conf, err := config.Load(file)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return conf
}

func loadCatalog(file string, database bool, connectionString string) *catalog.Catalog {
	if !database {
		courses, err := catalog.CatalogFromJson(file)
		if err != nil {
			log.Fatalf("cannot parse catalog file: %v", err)
		}
		return courses
	}

	ctx := context.Background()
	db, err := store.Connect(ctx, connectionString)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rawCourses, err := db.ListCourses(ctx)
	if err != nil {
		log.Fatalf("cannot list stored courses: %v", err)
	}
	courses, err := catalog.ProcessRawCatalog(catalog.RawCatalog{Courses: rawCourses})
	if err != nil {
		log.Fatalf("cannot process stored catalog: %v", err)
	}
	return courses
}

func loadSchedules(file string, conf config.Config) []schedule.Schedule {
	if file != "" {
		schedules, err := schedule.SchedulesFromJson(file)
		if err != nil {
			log.Fatalf("cannot parse schedule file: %v", err)
		}
		return schedules
	}

	initial, err := conf.Schedule()
	if err != nil {
		log.Fatalf("cannot build initial schedule: %v", err)
	}
	return []schedule.Schedule{initial}
}
