package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
)

// MonthYearLayout is the accepted date format for experience ranges, e.g. 01-2020.
const MonthYearLayout = "01-2006"

// FormatTimeRange renders the period between start and end as
// "<start> - <end>, <Y> year(s) <M> month(s)". An empty end means the period
// is ongoing: it is measured up to now and labelled "Now".
func FormatTimeRange(start, end string, now time.Time) (string, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	from, err := time.Parse(MonthYearLayout, start)
	if err != nil {
		return "", dto.NewValidationError("starting_date", "must be formatted as MM-YYYY")
	}

	to := now
	endLabel := "Now"
	if end != "" {
		to, err = time.Parse(MonthYearLayout, end)
		if err != nil {
			return "", dto.NewValidationError("ending_date", "must be formatted as MM-YYYY")
		}
		endLabel = end
	}

	total := monthIndex(to) - monthIndex(from)
	if total < 0 {
		return "", dto.NewValidationError("ending_date", "must not be before starting_date")
	}
	years, months := total/12, total%12

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s", start, endLabel)
	if total == 0 {
		b.WriteString(", just started!")
		return b.String(), nil
	}

	b.WriteString(", ")
	if years > 0 {
		fmt.Fprintf(&b, "%d %s ", years, plural(years, "year"))
	}
	if months > 0 {
		fmt.Fprintf(&b, "%d %s", months, plural(months, "month"))
	}
	return b.String(), nil
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
