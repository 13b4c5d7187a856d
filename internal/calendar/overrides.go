package calendar

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed overrides.yaml
var overridesYAML []byte

const defaultSpringBreakWeeks = 8

// overrides holds hand-checked deviations from the regular recurrence
// patterns, keyed by academic year.
type overrides struct {
	SpringBreakWeeks map[int]int `yaml:"spring_break_weeks"`
}

func loadOverrides() (*overrides, error) {
	var o overrides
	if err := yaml.Unmarshal(overridesYAML, &o); err != nil {
		return nil, fmt.Errorf("parsing override table: %w", err)
	}
	return &o, nil
}

// springBreakWeeks returns the number of weeks between the spring term start
// and the start of spring break for the given academic year.
func (o *overrides) springBreakWeeks(year int) int {
	if weeks, ok := o.SpringBreakWeeks[year]; ok {
		return weeks
	}
	return defaultSpringBreakWeeks
}
