package schedule

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Season within an academic year, declared in chronological order
type Season int

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonFall
)

var seasonNames = map[Season]string{
	SeasonSpring: "Spring",
	SeasonSummer: "Summer",
	SeasonFall:   "Fall",
}

func (season Season) String() string {
	if name, ok := seasonNames[season]; ok {
		return name
	}
	return fmt.Sprintf("Season(%d)", int(season))
}

func parseSeason(name string) (Season, bool) {
	for season, seasonName := range seasonNames {
		if seasonName == name {
			return season, true
		}
	}
	return 0, false
}

// SemTime is the time of a semester: a season of a given year
type SemTime struct {
	Season Season
	Year   int
}

func Spring(year int) SemTime { return SemTime{Season: SeasonSpring, Year: year} }
func Summer(year int) SemTime { return SemTime{Season: SeasonSummer, Year: year} }
func Fall(year int) SemTime   { return SemTime{Season: SeasonFall, Year: year} }

// Compare orders times by year and, within a year, Spring < Summer < Fall
func (time SemTime) Compare(other SemTime) int {
	if yearComparison := cmp.Compare(time.Year, other.Year); yearComparison != 0 {
		return yearComparison
	}
	return cmp.Compare(time.Season, other.Season)
}

func (time SemTime) Before(other SemTime) bool {
	return time.Compare(other) < 0
}

func (time SemTime) String() string {
	return fmt.Sprintf("%v %v", time.Season, time.Year)
}

// ParseSemTime parses the textual form produced by String (e.g. "Fall 2")
func ParseSemTime(text string) (SemTime, error) {
	seasonName, yearText, found := strings.Cut(strings.TrimSpace(text), " ")
	if !found {
		return SemTime{}, fmt.Errorf("semester time \"%v\" must be a season followed by a year", text)
	}

	season, ok := parseSeason(seasonName)
	if !ok {
		return SemTime{}, fmt.Errorf("unknown season \"%v\" in semester time \"%v\"", seasonName, text)
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearText))
	if err != nil {
		return SemTime{}, fmt.Errorf("invalid year in semester time \"%v\": %w", text, err)
	}

	return SemTime{Season: season, Year: year}, nil
}

// MarshalText is used when a time keys a JSON object
func (time SemTime) MarshalText() ([]byte, error) {
	return []byte(time.String()), nil
}

func (time *SemTime) UnmarshalText(text []byte) error {
	parsed, err := ParseSemTime(string(text))
	if err != nil {
		return err
	}
	*time = parsed
	return nil
}

// MarshalJSON encodes the time as a tagged value such as {"Fall": 2}
func (time SemTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int{time.Season.String(): time.Year})
}

func (time *SemTime) UnmarshalJSON(data []byte) error {
	var tagged map[string]int
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("semester time must be a tagged value: %w", err)
	}
	parsed, err := semTimeFromTagged(tagged)
	if err != nil {
		return err
	}
	*time = parsed
	return nil
}

func semTimeFromTagged(tagged map[string]int) (SemTime, error) {
	if len(tagged) != 1 {
		return SemTime{}, fmt.Errorf("semester time must have exactly one season tag: %v", tagged)
	}
	for seasonName, year := range tagged {
		season, ok := parseSeason(seasonName)
		if !ok {
			return SemTime{}, fmt.Errorf("unknown season \"%v\"", seasonName)
		}
		return SemTime{Season: season, Year: year}, nil
	}
	panic("unreachable")
}
