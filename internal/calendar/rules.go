package calendar

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// Rule is a yearly recurrence pattern for one calendar event: the nth (or
// nth-from-last) weekday of a month, or a fixed month/day. Evaluation is a
// pure function of the calendar year.
//
// Repeating rules were determined by hand, recognizing patterns in academic
// calendars posted online. Only checked back to 2012.
type Rule struct {
	def *cal.Holiday
}

var (
	// RuleThanksgiving is the last Thursday of November.
	RuleThanksgiving = &Rule{def: &cal.Holiday{
		Name:    "Thanksgiving",
		Month:   time.November,
		Weekday: time.Thursday,
		Offset:  -1,
		Func:    cal.CalcWeekdayOffset,
	}}

	// RuleLaborDay is the first Monday of September.
	RuleLaborDay = &Rule{def: us.LaborDay}

	// RuleMLKDay is the third Monday of January.
	RuleMLKDay = &Rule{def: us.MlkDay}

	// RuleMemorialDay is the last Monday of March.
	RuleMemorialDay = &Rule{def: &cal.Holiday{
		Name:    "Memorial Day",
		Month:   time.March,
		Weekday: time.Monday,
		Offset:  -1,
		Func:    cal.CalcWeekdayOffset,
	}}

	// RuleIndependenceDay is the 4th of July.
	RuleIndependenceDay = &Rule{def: us.IndependenceDay}

	// RuleFallStart is the second-to-last Monday of August.
	RuleFallStart = &Rule{def: &cal.Holiday{
		Name:    "Fall Term Start",
		Month:   time.August,
		Weekday: time.Monday,
		Offset:  -2,
		Func:    cal.CalcWeekdayOffset,
	}}

	// RuleFallBreakStart is the second-to-last Monday of October.
	RuleFallBreakStart = &Rule{def: &cal.Holiday{
		Name:    "Fall Break Start",
		Month:   time.October,
		Weekday: time.Monday,
		Offset:  -2,
		Func:    cal.CalcWeekdayOffset,
	}}

	// RuleSpringWithdraw is the third Monday of March.
	RuleSpringWithdraw = &Rule{def: &cal.Holiday{
		Name:    "Spring Withdraw Deadline",
		Month:   time.March,
		Weekday: time.Monday,
		Offset:  3,
		Func:    cal.CalcWeekdayOffset,
	}}
)

// Name returns the rule's display name.
func (r *Rule) Name() string {
	return r.def.Name
}

// Occurrence returns the rule's date in the given calendar year, normalized
// to midnight UTC.
func (r *Rule) Occurrence(year int) (time.Time, error) {
	actual, _ := r.def.Calc(year)
	if actual.IsZero() {
		return time.Time{}, fmt.Errorf("%w: rule %q has no occurrence in %d",
			ErrInvalidConfig, r.def.Name, year)
	}
	// A weekday offset past the number of matching weekdays in the month
	// spills into an adjacent month. That is a misconfigured rule, never a
	// date to return.
	if actual.Month() != r.def.Month {
		return time.Time{}, fmt.Errorf("%w: rule %q: no occurrence %d of %s in %s %d",
			ErrInvalidConfig, r.def.Name, r.def.Offset, r.def.Weekday, r.def.Month, year)
	}
	return midnightUTC(actual), nil
}

// Sequence returns successive yearly occurrences of the rule, beginning with
// the earliest occurrence on or after start. Exactly one bound must be set:
// a positive count, or a non-zero until date (inclusive).
func (r *Rule) Sequence(start time.Time, count int, until time.Time) ([]time.Time, error) {
	counted := count > 0
	if counted && !until.IsZero() {
		return nil, fmt.Errorf("%w: rule %q: specify either count or until, not both",
			ErrInvalidConfig, r.def.Name)
	}
	if !counted && until.IsZero() {
		return nil, fmt.Errorf("%w: rule %q: specify either count or until",
			ErrInvalidConfig, r.def.Name)
	}

	from := midnightUTC(start)
	var dates []time.Time
	for year := start.Year(); ; year++ {
		d, err := r.Occurrence(year)
		if err != nil {
			return nil, err
		}
		if d.Before(from) {
			continue
		}
		if !until.IsZero() && d.After(midnightUTC(until)) {
			break
		}
		dates = append(dates, d)
		if counted && len(dates) == count {
			break
		}
	}
	return dates, nil
}
