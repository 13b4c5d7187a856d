package calendar

import "errors"

// Semester codes within a term code (year*100 + code).
const (
	SemesterCodeFall   = 10
	SemesterCodeSpring = 20
	SemesterCodeSummer = 30
)

// Semesters in academic-year order.
var Semesters = []string{"Fall", "Spring", "Summer"}

var semesterByCode = map[int]string{
	SemesterCodeFall:   "Fall",
	SemesterCodeSpring: "Spring",
	SemesterCodeSummer: "Summer",
}

// HolidayNames lists the display names of the modeled holidays, as they
// appear in the "Holidays" tag group.
var HolidayNames = []string{
	"Thanksgiving Break",
	"Labor Day",
	"MLK Day",
	"Memorial Day",
	"Independence Day",
}

// Tags maps a tag name to the event-field suffixes it covers. Registration
// and Instruction fields combine with a semester prefix ("Fall Classes
// Start"); Holidays entries are display names resolved through the holiday
// registry.
var Tags = map[string][]string{
	"Registration": {
		"Late Registration Start",
		"Late Registration End",
		"Withdraw Deadline",
	},
	"Instruction": {
		"Classes Start",
		"Classes End",
		"Break Start",
		"Break End",
		"Finals Start",
		"Finals End",
		"Final Grades Due",
	},
	"Holidays": HolidayNames,
}

// FirstValidatedYear is the earliest academic year the hand-derived
// recurrence rules have been checked against published calendars.
const FirstValidatedYear = 2012

// Term and break lengths, in days.
const (
	termLengthDays       = 116
	summerTermLengthDays = 68
	winterBreakDays      = 24
)

var (
	// ErrInvalidConfig reports a malformed rule or generator configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound reports a lookup outside the modeled set of years,
	// fields, tags, or holidays.
	ErrNotFound = errors.New("not found")
)
