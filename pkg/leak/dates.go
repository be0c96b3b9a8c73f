package leak

import (
	"fmt"
	"time"
)

//DateFormat is the layout of document start dates and leak dates
const DateFormat = "2006-01-02"

//IndexDates maps sample indexes to days, counting from start
func IndexDates(start string, indexes []int) ([]string, error) {
	first, err := time.Parse(DateFormat, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}

	dates := make([]string, len(indexes))
	for i, index := range indexes {
		dates[i] = first.AddDate(0, 0, index).Format(DateFormat)
	}
	return dates, nil
}

//DateIndex returns the sample index of day date in a series starting on start
func DateIndex(start string, date string) (int, error) {
	first, err := time.Parse(DateFormat, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	day, err := time.Parse(DateFormat, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if day.Before(first) {
		return 0, fmt.Errorf("%s is before the first sample on %s", date, start)
	}
	return int(day.Sub(first).Hours() / 24), nil
}
