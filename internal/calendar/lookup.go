package calendar

import (
	"fmt"
	"sort"
	"time"
)

// HolidayID identifies one of the modeled holidays.
type HolidayID int

const (
	HolidayThanksgiving HolidayID = iota
	HolidayLaborDay
	HolidayMLKDay
	HolidayMemorialDay
	HolidayIndependenceDay
)

// holidayDef binds a holiday to its recurrence rule. secondHalf marks
// holidays that fall in the Jan-Jul half of an academic year: their rule
// runs on the following calendar year, since academic year 2020 spans
// Aug 2020 - Jul 2021. interval marks holidays modeled as a closed
// Start/End range around the rule date.
type holidayDef struct {
	rule       *Rule
	secondHalf bool
	interval   bool
}

var holidayDefs = map[HolidayID]holidayDef{
	HolidayThanksgiving:    {rule: RuleThanksgiving, interval: true},
	HolidayLaborDay:        {rule: RuleLaborDay},
	HolidayMLKDay:          {rule: RuleMLKDay, secondHalf: true},
	HolidayMemorialDay:     {rule: RuleMemorialDay, secondHalf: true},
	HolidayIndependenceDay: {rule: RuleIndependenceDay, secondHalf: true},
}

// holidayByName resolves display names to holiday identifiers.
// "Thanksgiving Break" is the tag-group spelling of "Thanksgiving".
var holidayByName = map[string]HolidayID{
	"Thanksgiving":       HolidayThanksgiving,
	"Thanksgiving Break": HolidayThanksgiving,
	"Labor Day":          HolidayLaborDay,
	"MLK Day":            HolidayMLKDay,
	"Memorial Day":       HolidayMemorialDay,
	"Independence Day":   HolidayIndependenceDay,
}

// DateInTerm returns the date of an event field within one term. The term
// code packs the academic year and semester as year*100 + code (10 Fall,
// 20 Spring, 30 Summer). The field is the event name without its semester
// prefix ("Classes Start"), or a bare event name for dates stored without
// one ("Labor Day").
func (g *Generator) DateInTerm(term int, field string) (time.Time, error) {
	yr := term / 100
	sem, ok := semesterByCode[term-yr*100]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: term code %d has no valid semester code",
			ErrNotFound, term)
	}
	yrDates, ok := g.dates[yr]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: academic year %d outside configured range [%d, %d)",
			ErrNotFound, yr, g.startYear, g.endYear)
	}
	if d, ok := yrDates[sem+" "+field]; ok {
		return d, nil
	}
	if d, ok := yrDates[field]; ok {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("%w: no %q date in %s %d", ErrNotFound, field, sem, yr)
}

// DatesByTag returns, per academic year, every date whose field belongs to
// the named tag group. Interval holidays contribute "<name> Start" and
// "<name> End" keys; point holidays a bare key. Semester-scoped fields are
// keyed with their semester prefix; fields a term does not model (the
// summer gaps) are skipped.
func (g *Generator) DatesByTag(tag string) (map[int]map[string]time.Time, error) {
	fields, ok := Tags[tag]
	if !ok {
		return nil, fmt.Errorf("%w: tag %q not valid, choose from %v",
			ErrNotFound, tag, tagNames())
	}

	out := make(map[int]map[string]time.Time, len(g.years))
	for _, yr := range g.years {
		vals := make(map[string]time.Time)
		if tag == "Holidays" {
			for _, name := range fields {
				def := holidayDefs[holidayByName[name]]
				d, err := g.GetHoliday(name, yr)
				if err != nil {
					return nil, err
				}
				if def.interval {
					vals[name+" Start"] = addDays(d, -1)
					vals[name+" End"] = addDays(d, 1)
				} else {
					vals[name] = d
				}
			}
		} else {
			for _, sem := range Semesters {
				for _, fld := range fields {
					if d, ok := g.dates[yr][sem+" "+fld]; ok {
						vals[sem+" "+fld] = d
					}
				}
			}
		}
		out[yr] = vals
	}
	return out, nil
}

// GetHoliday returns the date of a holiday within the given academic year.
func (g *Generator) GetHoliday(name string, academicYear int) (time.Time, error) {
	id, ok := holidayByName[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: holiday %q not recognized", ErrNotFound, name)
	}
	def := holidayDefs[id]
	year := academicYear
	if def.secondHalf {
		year++
	}
	return def.rule.Occurrence(year)
}

// IsHoliday reports whether the date falls on one of the modeled holidays.
func (g *Generator) IsHoliday(date time.Time) bool {
	actual, _, _ := g.holidays.IsHoliday(date)
	return actual
}

// tagNames returns the valid tag names in sorted order.
func tagNames() []string {
	names := make([]string, 0, len(Tags))
	for name := range Tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
