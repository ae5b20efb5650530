package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type rawSemester struct {
	Courses []catalog.CourseID `mapstructure:"courses" json:"courses"`
	Time    SemTime            `mapstructure:"time" json:"time"`
}

// rawSchedule keys each semester by the textual form of its time
type rawSchedule map[SemTime]rawSemester

func SchedulesToJson(schedules []Schedule) ([]byte, error) {
	rawSchedules := lo.Map(schedules, func(schedule Schedule, _ int) rawSchedule {
		raw := make(rawSchedule, schedule.Len())
		for _, semester := range schedule.semesters {
			raw[semester.time] = rawSemester{Courses: semester.Courses(), Time: semester.time}
		}
		return raw
	})
	return json.MarshalIndent(rawSchedules, "", "  ")
}

func WriteSchedules(file string, schedules []Schedule) error {
	bytes, err := SchedulesToJson(schedules)
	if err != nil {
		return fmt.Errorf("cannot encode schedules: %w", err)
	}
	if err := os.WriteFile(file, bytes, 0666); err != nil {
		return fmt.Errorf("cannot write schedules file: %w", err)
	}
	return nil
}

func SchedulesFromJson(file string) ([]Schedule, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read schedules file: %w", err)
	}

	var inputJson []map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("cannot parse schedules file: %w", err)
	}

	schedules := make([]Schedule, 0, len(inputJson))
	for i, scheduleJson := range inputJson {
		var raw map[string]rawSemester
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(semTimeDecodeHook, catalog.CourseIDDecodeHook),
			Result:     &raw,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(scheduleJson); err != nil {
			return nil, fmt.Errorf("cannot decode schedule %v: %w", i, err)
		}

		schedule := NewSchedule()
		for key, semester := range raw {
			// The tagged time is authoritative, but the key must agree with it
			if keyTime, err := ParseSemTime(key); err != nil || keyTime != semester.Time {
				return nil, fmt.Errorf("schedule %v: semester key \"%v\" does not match its time %v", i, key, semester.Time)
			}
			schedule.AddSemester(NewSemester(semester.Time, semester.Courses...))
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

// semTimeDecodeHook decodes times given either as tagged values ({"Fall": 2}) or as text ("Fall 2")
func semTimeDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(SemTime{}) {
		return data, nil
	}

	switch value := data.(type) {
	case string:
		return ParseSemTime(value)
	case map[string]any:
		tagged := make(map[string]int, len(value))
		for season, yearAny := range value {
			year, ok := yearAny.(float64)
			if !ok || year != float64(int(year)) {
				return nil, fmt.Errorf("year of season \"%v\" must be an integer: %v", season, yearAny)
			}
			tagged[season] = int(year)
		}
		return semTimeFromTagged(tagged)
	}
	return data, nil
}
