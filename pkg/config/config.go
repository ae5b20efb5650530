package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/limaJavier/semplanner/pkg/schedule"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// FileNames are the configuration files looked up next to the executable, by priority
var FileNames = []string{"config.json", "config.yaml", "config.yml"}

type Config struct {
	Horizon  []string `mapstructure:"horizon"`   // Semesters of the initial schedule, such as "Fall 0"
	MaxDepth int      `mapstructure:"max_depth"` // Zero means unbounded
	Unique   bool     `mapstructure:"unique"`    // Drop structurally repeated schedules from the output
}

func Default() Config {
	return Config{
		Horizon: lo.Map(schedule.DefaultTimes, func(time schedule.SemTime, _ int) string { return time.String() }),
	}
}

// Load reads a JSON or YAML configuration file. Keys absent from the file keep their default values
func Load(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var inputMap map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &inputMap)
	case ".json":
		err = json.Unmarshal(bytes, &inputMap)
	default:
		return Config{}, fmt.Errorf("config file \"%v\" must be a .json, .yaml or .yml file", file)
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	var config Config
	if err := mapstructure.Decode(inputMap, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file: %w", err)
	}
	if len(config.Horizon) == 0 {
		config.Horizon = Default().Horizon
	}

	if config.MaxDepth < 0 {
		return Config{}, fmt.Errorf("max_depth must not be negative: %v", config.MaxDepth)
	} else if _, err := config.Schedule(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Locate looks for a configuration file in the executable's directory
func Locate() (string, bool) {
	execPath, err := os.Executable()
	if err != nil {
		return "", false
	}
	return LocateIn(path.Dir(execPath))
}

func LocateIn(directory string) (string, bool) {
	files, err := os.ReadDir(directory)
	if err != nil {
		return "", false
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	fileName, ok := lo.Find(FileNames, func(name string) bool { return slices.Contains(fileNames, name) })
	if !ok {
		return "", false
	}
	return filepath.Join(directory, fileName), true
}

// Schedule builds the empty schedule spanning the configured horizon
func (config Config) Schedule() (schedule.Schedule, error) {
	times := make([]schedule.SemTime, 0, len(config.Horizon))
	for _, text := range config.Horizon {
		time, err := schedule.ParseSemTime(text)
		if err != nil {
			return schedule.Schedule{}, fmt.Errorf("invalid horizon: %w", err)
		}
		if slices.Contains(times, time) {
			return schedule.Schedule{}, fmt.Errorf("invalid horizon: semester \"%v\" is repeated", text)
		}
		times = append(times, time)
	}
	return schedule.FromTimes(times), nil
}

// Planner returns the planner matching MaxDepth
func (config Config) Planner() schedule.Planner {
	return schedule.NewBoundedPlanner(config.MaxDepth)
}
