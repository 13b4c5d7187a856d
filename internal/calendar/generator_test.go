package calendar

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(Options{StartYear: 2012, EndYear: 2032})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return g
}

func TestTermLengths(t *testing.T) {
	g := newTestGenerator(t)

	for _, yr := range g.Years() {
		for _, sem := range []struct {
			code int
			days int
		}{
			{SemesterCodeFall, termLengthDays},
			{SemesterCodeSpring, termLengthDays},
		} {
			term := yr*100 + sem.code
			start, err := g.DateInTerm(term, "Term Start")
			if err != nil {
				t.Fatalf("DateInTerm(%d, Term Start): %v", term, err)
			}
			end, err := g.DateInTerm(term, "Term End")
			if err != nil {
				t.Fatalf("DateInTerm(%d, Term End): %v", term, err)
			}
			if got := int(end.Sub(start) / (24 * time.Hour)); got != sem.days {
				t.Errorf("term %d length = %d days, want %d", term, got, sem.days)
			}
		}
	}
}

func TestSpringBreakOffset(t *testing.T) {
	g := newTestGenerator(t)

	for _, yr := range g.Years() {
		start, err := g.DateInTerm(yr*100+SemesterCodeSpring, "Term Start")
		if err != nil {
			t.Fatalf("spring term start %d: %v", yr, err)
		}
		breakStart, err := g.DateInTerm(yr*100+SemesterCodeSpring, "Break Start")
		if err != nil {
			t.Fatalf("spring break start %d: %v", yr, err)
		}

		// 2013-2014 is the one hand-checked irregular year
		wantWeeks := 8
		if yr == 2013 {
			wantWeeks = 9
		}
		if got := int(breakStart.Sub(start) / (7 * 24 * time.Hour)); got != wantWeeks {
			t.Errorf("spring break %d starts %d weeks into the term, want %d", yr, got, wantWeeks)
		}
	}
}

func TestKnownDates(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		term  int
		field string
		want  string
	}{
		{202010, "Term Start", "2020-08-24"},
		{202010, "Classes Start", "2020-08-24"},
		{202010, "Late Registration End", "2020-08-28"},
		{202010, "Break Start", "2020-10-19"},
		{202010, "Withdraw Deadline", "2020-10-21"},
		{202010, "Labor Day", "2020-09-07"},
		{202010, "Term End", "2020-12-18"},
		{202010, "Final Grades Due", "2020-12-21"},
		{202010, "Thanksgiving Break Start", "2020-11-25"},
		{202010, "Thanksgiving Break End", "2020-11-27"},
		{202020, "Term Start", "2021-01-11"},
		{202020, "Break Start", "2021-03-08"},
		{202020, "Withdraw Deadline", "2021-03-15"},
		{202020, "Term End", "2021-05-07"},
		{202030, "Term Start", "2021-05-17"},
		{202030, "Independence Day", "2021-07-04"},
	}

	for _, tt := range tests {
		d, err := g.DateInTerm(tt.term, tt.field)
		if err != nil {
			t.Errorf("DateInTerm(%d, %q): %v", tt.term, tt.field, err)
			continue
		}
		if got := formatDate(d); got != tt.want {
			t.Errorf("DateInTerm(%d, %q) = %s, want %s", tt.term, tt.field, got, tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	g, err := New(Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if g.StartYear() != FirstValidatedYear {
		t.Errorf("default start year = %d, want %d", g.StartYear(), FirstValidatedYear)
	}
	if want := time.Now().Year() + 2; g.EndYear() != want {
		t.Errorf("default end year = %d, want %d", g.EndYear(), want)
	}
	if len(g.Years()) != g.EndYear()-g.StartYear() {
		t.Errorf("got %d years for range [%d, %d)", len(g.Years()), g.StartYear(), g.EndYear())
	}
}

func TestInvalidYearRange(t *testing.T) {
	if _, err := New(Options{StartYear: 2020, EndYear: 2015}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for inverted range, got %v", err)
	}
}

func TestPreValidationWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	if _, err := New(Options{StartYear: 2005, EndYear: 2007, Logger: logger}); err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "validated") {
		t.Errorf("expected a pre-2012 validation warning, log output:\n%s", buf.String())
	}
}

func TestSummerFieldsAreGaps(t *testing.T) {
	g := newTestGenerator(t)

	// Summer registration and finals dates are not modeled
	for _, field := range []string{"Finals Start", "Finals End", "Late Registration Start", "Withdraw Deadline", "Classes Start"} {
		if _, err := g.DateInTerm(202030, field); !errors.Is(err, ErrNotFound) {
			t.Errorf("DateInTerm(202030, %q): expected ErrNotFound, got %v", field, err)
		}
	}

	// The modeled summer fields are present
	for _, field := range []string{"Term Start", "Term End", "Final Grades Due", "Independence Day"} {
		if _, err := g.DateInTerm(202030, field); err != nil {
			t.Errorf("DateInTerm(202030, %q): %v", field, err)
		}
	}
}

func TestEventsForYear(t *testing.T) {
	g := newTestGenerator(t)

	events, err := g.EventsForYear(2020)
	if err != nil {
		t.Fatalf("EventsForYear returned error: %v", err)
	}
	if len(events) != 31 {
		t.Errorf("got %d events, want 31", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Date < events[i-1].Date {
			t.Errorf("events out of order: %s before %s", events[i-1].Date, events[i].Date)
		}
	}

	if _, err := g.EventsForYear(1999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for out-of-range year, got %v", err)
	}
}
