package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/cardinaldata/academic-calendar/internal/calendar"
)

func main() {
	// Parse flags
	startYear := flag.Int("start-year", calendar.FirstValidatedYear, "First academic year to generate")
	endYear := flag.Int("end-year", 0, "End of the year range, exclusive (default: current year + 2)")
	year := flag.Int("year", 0, "Single academic year to print (default: all generated years)")
	format := flag.String("format", "table", "Output format: table, ics, csv or json")
	logLevel := flag.String("log-level", "warn", "Log verbosity: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	gen, err := calendar.New(calendar.Options{
		StartYear: *startYear,
		EndYear:   *endYear,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to generate calendar: %v", err)
	}

	years := gen.Years()
	if *year != 0 {
		years = []int{*year}
	}

	for _, yr := range years {
		if err := render(gen, yr, *format); err != nil {
			log.Fatalf("Failed to render year %d: %v", yr, err)
		}
	}
}

// render writes one academic year to stdout in the requested format
func render(gen *calendar.Generator, year int, format string) error {
	switch format {
	case "table":
		events, err := gen.EventsForYear(year)
		if err != nil {
			return err
		}
		fmt.Printf("Academic year %d-%d\n", year, year+1)
		for _, event := range events {
			fmt.Printf("  %s  %s\n", event.Date, event.Name)
		}
		return nil
	case "ics":
		return gen.WriteICS(os.Stdout, year)
	case "csv":
		return gen.WriteCSV(os.Stdout, year)
	case "json":
		return gen.WriteJSON(os.Stdout, year)
	default:
		return fmt.Errorf("unknown format %q (choose table, ics, csv or json)", format)
	}
}
