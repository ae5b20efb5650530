package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// RawCourse mirrors a course record of the catalog document
type RawCourse struct {
	Coid        CourseID     `mapstructure:"coid" json:"coid"`
	Name        string       `mapstructure:"name" json:"name"`
	Description string       `mapstructure:"description" json:"description"`
	Offered     string       `mapstructure:"offered" json:"offered"`
	AgeReqs     string       `mapstructure:"age_reqs" json:"age_reqs"`
	Complete    bool         `mapstructure:"complete" json:"complete"`
	Prereqs     [][]CourseID `mapstructure:"prereqs" json:"prereqs"`
	PrereqsOpt  []CourseID   `mapstructure:"prereqs_opt" json:"prereqs_opt"`
	Coreqs      [][]CourseID `mapstructure:"coreqs" json:"coreqs"`
	CoreqsOpt   []CourseID   `mapstructure:"coreqs_opt" json:"coreqs_opt"`
	PostOptions []CourseID   `mapstructure:"post_options" json:"post_options"`
}

type RawCatalog struct {
	Courses []RawCourse `mapstructure:"courses" json:"courses"`
}

func CatalogFromJson(file string) (*Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("cannot parse catalog file: %w", err)
	}

	var rawCatalog RawCatalog
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: CourseIDDecodeHook,
		Result:     &rawCatalog,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return nil, fmt.Errorf("cannot decode catalog file: %w", err)
	}
	return ProcessRawCatalog(rawCatalog)
}

// ProcessRawCatalog validates every course id of the raw catalog and adds its courses in order.
// Post-options of the raw records are ignored, since the catalog derives them
func ProcessRawCatalog(rawCatalog RawCatalog) (*Catalog, error) {
	catalog := NewCatalog()

	for i, rawCourse := range rawCatalog.Courses {
		//** Validate ids
		if !validCourseID(rawCourse.Coid) {
			return nil, fmt.Errorf("course %v has an invalid id: %v", i, rawCourse.Coid)
		}
		referenced := append(lo.Flatten(rawCourse.Prereqs), lo.Flatten(rawCourse.Coreqs)...)
		referenced = append(referenced, rawCourse.PrereqsOpt...)
		referenced = append(referenced, rawCourse.CoreqsOpt...)
		if invalid, ok := lo.Find(referenced, func(id CourseID) bool { return !validCourseID(id) }); ok {
			return nil, fmt.Errorf("course \"%v\" references an invalid id: %v", rawCourse.Coid, invalid)
		}

		//** Add course
		catalog.AddCourse(rawCourse.ToCourse())
	}

	return catalog, nil
}

func (rawCourse RawCourse) ToCourse() Course {
	course := NewCourse(rawCourse.Coid)
	course.Complete = rawCourse.Complete
	course.Name = rawCourse.Name
	course.Description = rawCourse.Description
	course.Offered = rawCourse.Offered
	course.AgeReqs = rawCourse.AgeReqs
	course.Prereqs = lo.Map(rawCourse.Prereqs, func(ids []CourseID, _ int) Group { return NewGroup(ids...) })
	course.PrereqsOpt = NewGroup(rawCourse.PrereqsOpt...)
	course.Coreqs = lo.Map(rawCourse.Coreqs, func(ids []CourseID, _ int) Group { return NewGroup(ids...) })
	course.CoreqsOpt = NewGroup(rawCourse.CoreqsOpt...)
	return course
}

func RawCourseFrom(course Course) RawCourse {
	toSlices := func(groups []Group) [][]CourseID {
		return lo.Map(groups, func(group Group, _ int) []CourseID { return []CourseID(group) })
	}

	return RawCourse{
		Coid:        course.Id,
		Name:        course.Name,
		Description: course.Description,
		Offered:     course.Offered,
		AgeReqs:     course.AgeReqs,
		Complete:    course.Complete,
		Prereqs:     toSlices(course.Prereqs),
		PrereqsOpt:  []CourseID(course.PrereqsOpt),
		Coreqs:      toSlices(course.Coreqs),
		CoreqsOpt:   []CourseID(course.CoreqsOpt),
		PostOptions: []CourseID(course.PostOptions),
	}
}

func validCourseID(id CourseID) bool {
	parsed, err := ParseCourseID(id.String())
	return err == nil && parsed == id
}
