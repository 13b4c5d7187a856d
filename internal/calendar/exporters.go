package calendar

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// ICS constants
const (
	ICSProductID = "-//CardinalData//AcademicCalendar//EN"
	icsUIDDomain = "academic-calendar.cardinaldata.dev"
)

// sortEvents sorts events by date in ascending order, ties broken by name
func sortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Name < events[j].Name
	})
}

// WriteICS writes an iCalendar (ICS) feed with one all-day event per
// calendar entry of the academic year.
func (g *Generator) WriteICS(w io.Writer, year int) error {
	events, err := g.EventsForYear(year)
	if err != nil {
		return err
	}

	// ICS header
	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:Academic Calendar %d-%d\n", year, year+1)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	stamp := time.Now().UTC().Format("20060102T150405Z")
	for _, event := range events {
		eventDate, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			continue
		}

		// UID must be stable across exports for calendar apps to update
		// events in place
		uid := fmt.Sprintf("%s-%s-%d@%s", event.Date, slugify(event.Name), year, icsUIDDomain)

		// Event - all-day event
		fmt.Fprintln(w, "BEGIN:VEVENT")
		fmt.Fprintf(w, "UID:%s\n", uid)
		fmt.Fprintf(w, "DTSTAMP:%s\n", stamp)
		fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", eventDate.Format("20060102"))
		fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", eventDate.AddDate(0, 0, 1).Format("20060102"))
		fmt.Fprintf(w, "SUMMARY:%s\n", event.Name)
		fmt.Fprintf(w, "DESCRIPTION:%s (%d-%d academic year)\n", event.Name, year, year+1)
		fmt.Fprintln(w, "END:VEVENT")
	}

	fmt.Fprintln(w, "END:VCALENDAR")
	return nil
}

// WriteCSV writes the academic year's events as CSV rows
func (g *Generator) WriteCSV(w io.Writer, year int) error {
	events, err := g.EventsForYear(year)
	if err != nil {
		return err
	}

	// CSV header
	fmt.Fprintln(w, "Date,Event")

	// CSV rows
	for _, event := range events {
		fmt.Fprintf(w, "%s,%s\n", event.Date, event.Name)
	}
	return nil
}

// WriteJSON writes the academic year's events as a JSON document
func (g *Generator) WriteJSON(w io.Writer, year int) error {
	events, err := g.EventsForYear(year)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"year":   year,
		"events": events,
	}
	return json.NewEncoder(w).Encode(data)
}

// slugify lowercases an event name and replaces spaces for use in UIDs
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
