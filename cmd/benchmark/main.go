package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
)

const (
	executablePath = "../../bin/semplanner"
	resultsFile    = "benchmark_results.csv"
)

type PlannerType int

const (
	exhaustive PlannerType = iota
	bounded
)

type ResultType int

const (
	solved ResultType = iota
	empty
	timeout
	invalid
)

var (
	plannerTypes = map[PlannerType]string{
		exhaustive: "exhaustive",
		bounded:    "bounded",
	}
	resultTypes = map[ResultType]string{
		solved:  "solved",
		empty:   "empty",
		timeout: "timeout",
		invalid: "invalid",
	}
	countRegex = regexp.MustCompile(`Found (\d+) schedule\(s\)`)
)

type BenchmarkResult struct {
	Course    catalog.CourseID
	Planner   PlannerType
	Schedules int
	Duration  int64
	Result    ResultType
}

func main() {
	// Define arguments
	catalogFilePathPtr := flag.String("catalog", "", "Path to the catalog file")
	executablePathPtr := flag.String("executable", executablePath, "Path to the planner executable")
	depthPtr := flag.Int("depth", 8, "Maximum requirement depth used by the bounded planner")
	timeoutPtr := flag.Duration("timeout", 30*time.Second, "Time allowed to each run")
	outFilePathPtr := flag.String("out", resultsFile, "Path to the CSV file where the results will be written")
	flag.Parse()

	if *catalogFilePathPtr == "" {
		log.Fatal("a catalog file must be specified")
	} else if *depthPtr <= 0 {
		log.Fatalf("depth must be positive: %v", *depthPtr)
	}

	courses := getCourses(*catalogFilePathPtr, flag.Args())
	planners := getPlanners()
	results := make([]BenchmarkResult, 0, len(courses)*len(planners))

	for _, course := range courses {
		for _, planner := range planners {
			fmt.Printf("Benchmarking course \"%v\" with planner \"%v\"\n", course, plannerTypes[planner])

			schedules, duration, result := measure(*executablePathPtr, *catalogFilePathPtr, planner, *depthPtr, course, *timeoutPtr)

			results = append(results, BenchmarkResult{
				Course:    course,
				Planner:   planner,
				Schedules: schedules,
				Duration:  duration,
				Result:    result,
			})
		}
	}

	toCsv(*outFilePathPtr, results)
}

// getCourses parses the given course ids or, when none is given, takes every complete course of the catalog
func getCourses(catalogFile string, args []string) []catalog.CourseID {
	if len(args) > 0 {
		return lo.Map(args, func(arg string, _ int) catalog.CourseID {
			return lo.Must(catalog.ParseCourseID(arg))
		})
	}

	courses, err := catalog.CatalogFromJson(catalogFile)
	if err != nil {
		log.Fatalf("cannot parse catalog file: %v", err)
	}
	return lo.Filter(courses.Ids(), func(id catalog.CourseID, _ int) bool {
		course, _ := courses.Course(id)
		return course.Complete
	})
}

func getPlanners() []PlannerType {
	return []PlannerType{exhaustive, bounded}
}

func plannerArgs(catalogFile string, planner PlannerType, depth int, course catalog.CourseID) []string {
	if planner == exhaustive {
		depth = 0
	}
	return []string{"-catalog", catalogFile, "-depth", strconv.Itoa(depth), course.String()}
}

func measure(executable, catalogFile string, planner PlannerType, depth int, course catalog.CourseID, limit time.Duration) (schedules int, duration int64, result ResultType) {
	ctx, cancel := context.WithTimeout(context.Background(), limit)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, plannerArgs(catalogFile, planner, depth, course)...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	start := time.Now()
	err := cmd.Run()
	duration = time.Since(start).Milliseconds()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return 0, duration, timeout
	} else if cmd.ProcessState == nil {
		log.Fatalf("cannot execute \"%v\": %v", executable, err)
	}

	switch cmd.ProcessState.ExitCode() {
	case 0:
		schedules = parseScheduleCount(stdOut.String())
		return schedules, duration, classify(schedules)
	case 15:
		return parseScheduleCount(stdOut.String()), duration, invalid
	default:
		log.Fatalf("an error occurred during the execution of the planner at course \"%v\" using planner \"%v\": %v\n", course, plannerTypes[planner], stdErr.String())
	}
	return schedules, duration, result
}

// parseScheduleCount returns the count of the last placement reported in the output
func parseScheduleCount(output string) int {
	matches := countRegex.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return 0
	}
	return lo.Must(strconv.Atoi(matches[len(matches)-1][1]))
}

func classify(schedules int) ResultType {
	if schedules == 0 {
		return empty
	}
	return solved
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Course.String(),
		plannerTypes[result.Planner],
		fmt.Sprintf("%d", result.Schedules),
		fmt.Sprintf("%d", result.Duration),
		resultTypes[result.Result],
	}
}

func toCsv(file string, results []BenchmarkResult) {
	csvFile, err := os.Create(file)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer csvFile.Close()

	writer := csv.NewWriter(csvFile)
	defer writer.Flush()

	header := []string{"course", "planner", "schedules", "milliseconds", "result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
