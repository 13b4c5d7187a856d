package calendar

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rickar/cal/v2"
)

// Options configures a Generator.
type Options struct {
	// StartYear is the first academic year to produce dates for (2019
	// means the 2019-2020 academic year). Defaults to 2012. Earlier years
	// are generated but logged as unvalidated.
	StartYear int

	// EndYear bounds the year range exclusively. Defaults to the current
	// calendar year plus two.
	EndYear int

	// Logger receives diagnostics. nil discards them.
	Logger *slog.Logger
}

// Generator holds the computed academic calendar for a range of academic
// years. All years are derived eagerly by New; the generator is immutable
// afterwards and safe for concurrent reads.
type Generator struct {
	startYear int
	endYear   int
	years     []int
	dates     map[int]map[string]time.Time
	holidays  *cal.Calendar
	logger    *slog.Logger
}

// New computes the academic calendar for every year in
// [opts.StartYear, opts.EndYear).
func New(opts Options) (*Generator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	startYear := opts.StartYear
	if startYear == 0 {
		startYear = FirstValidatedYear
	}
	endYear := opts.EndYear
	if endYear == 0 {
		endYear = time.Now().Year() + 2
	}
	if startYear >= endYear {
		return nil, fmt.Errorf("%w: start year %d not before end year %d",
			ErrInvalidConfig, startYear, endYear)
	}
	if startYear < FirstValidatedYear {
		logger.Warn("dates have not been validated prior to 2012", "start_year", startYear)
	}

	ovr, err := loadOverrides()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	holidays := &cal.Calendar{Name: "Academic Holidays"}
	holidays.AddHoliday(
		RuleThanksgiving.def,
		RuleLaborDay.def,
		RuleMLKDay.def,
		RuleMemorialDay.def,
		RuleIndependenceDay.def,
	)

	g := &Generator{
		startYear: startYear,
		endYear:   endYear,
		dates:     make(map[int]map[string]time.Time, endYear-startYear),
		holidays:  holidays,
		logger:    logger,
	}
	for yr := startYear; yr < endYear; yr++ {
		yrDates, err := deriveYear(yr, ovr)
		if err != nil {
			return nil, err
		}
		g.years = append(g.years, yr)
		g.dates[yr] = yrDates
		logger.Debug("derived academic year", "year", yr, "events", len(yrDates))
	}
	return g, nil
}

// deriveYear computes the full event mapping for one academic year. Term
// start and end dates are the anchors; every other date is a fixed offset
// from an anchor or comes from a recurrence rule, never computed
// independently.
func deriveYear(yr int, ovr *overrides) (map[string]time.Time, error) {
	dates := make(map[string]time.Time, 31)

	// Fall term.
	fallStart, err := RuleFallStart.Occurrence(yr)
	if err != nil {
		return nil, err
	}
	fallEnd := addDays(fallStart, termLengthDays)

	breakStart, err := RuleFallBreakStart.Occurrence(yr)
	if err != nil {
		return nil, err
	}
	breakEnd := addDays(breakStart, 1)

	thanksgiving, err := RuleThanksgiving.Occurrence(yr)
	if err != nil {
		return nil, err
	}
	laborDay, err := RuleLaborDay.Occurrence(yr)
	if err != nil {
		return nil, err
	}

	dates["Fall Term Start"] = fallStart
	dates["Fall Classes Start"] = fallStart
	dates["Fall Late Registration Start"] = fallStart
	dates["Fall Late Registration End"] = addDays(fallStart, 4)
	dates["Fall Break Start"] = breakStart
	dates["Fall Break End"] = breakEnd
	dates["Fall Withdraw Deadline"] = addDays(breakEnd, 1)
	dates["Thanksgiving Break Start"] = addDays(thanksgiving, -1)
	dates["Thanksgiving Break End"] = addDays(thanksgiving, 1)
	dates["Labor Day"] = laborDay
	dates["Fall Classes End"] = addDays(fallEnd, -4)
	dates["Fall Finals Start"] = addDays(fallEnd, -3)
	dates["Fall Finals End"] = fallEnd
	dates["Fall Term End"] = fallEnd
	dates["Fall Final Grades Due"] = addDays(fallEnd, 3)

	// Spring term. The winter break length is fixed, so the spring anchors
	// derive from the fall ones. The spring half of academic year yr falls
	// in calendar year yr+1.
	springStart := addDays(fallEnd, winterBreakDays)
	springEnd := addDays(springStart, termLengthDays)
	springBreakStart := addWeeks(springStart, ovr.springBreakWeeks(yr))

	withdraw, err := RuleSpringWithdraw.Occurrence(yr + 1)
	if err != nil {
		return nil, err
	}

	dates["Spring Term Start"] = springStart
	dates["Spring Classes Start"] = springStart
	dates["Spring Late Registration Start"] = springStart
	dates["Spring Late Registration End"] = addDays(springStart, 4)
	dates["Spring Break Start"] = springBreakStart
	dates["Spring Break End"] = addDays(springBreakStart, 4)
	dates["Spring Withdraw Deadline"] = withdraw
	dates["Spring Classes End"] = addDays(springEnd, -4)
	dates["Spring Finals Start"] = addDays(springEnd, -3)
	dates["Spring Finals End"] = springEnd
	dates["Spring Term End"] = springEnd
	dates["Spring Final Grades Due"] = addDays(springEnd, 3)

	// Summer term. Only the anchors, Independence Day, and the grades
	// deadline follow a known pattern; registration and finals dates for
	// summer have no hand-derived rules and are deliberately absent.
	summerStart := addDays(springEnd, 10)
	summerEnd := addDays(springStart, summerTermLengthDays)

	independence, err := RuleIndependenceDay.Occurrence(yr + 1)
	if err != nil {
		return nil, err
	}

	dates["Summer Term Start"] = summerStart
	dates["Independence Day"] = independence
	dates["Summer Term End"] = summerEnd
	dates["Summer Final Grades Due"] = addDays(summerEnd, 3)

	return dates, nil
}

// StartYear returns the first configured academic year.
func (g *Generator) StartYear() int {
	return g.startYear
}

// EndYear returns the exclusive end of the configured year range.
func (g *Generator) EndYear() int {
	return g.endYear
}

// Years returns the configured academic years in ascending order.
func (g *Generator) Years() []int {
	years := make([]int, len(g.years))
	copy(years, g.years)
	return years
}

// EventsForYear returns all events of one academic year, sorted by date
// with ties broken by name.
func (g *Generator) EventsForYear(year int) ([]Event, error) {
	yrDates, ok := g.dates[year]
	if !ok {
		return nil, fmt.Errorf("%w: academic year %d outside configured range [%d, %d)",
			ErrNotFound, year, g.startYear, g.endYear)
	}
	events := make([]Event, 0, len(yrDates))
	for name, d := range yrDates {
		events = append(events, Event{Date: formatDate(d), Name: name, Year: year})
	}
	sortEvents(events)
	return events, nil
}
