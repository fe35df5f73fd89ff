package schedule

import (
	"iter"
	"strings"
	"time"

	"hoodbook/internal/domain"
)

// Filter values that disable the style and instructor filters. An empty
// string has the same effect.
const (
	AllStyles      = "ALL_STYLES"
	AllInstructors = "ALL_INSTRUCTORS"
)

type Filters struct {
	Style      string
	Instructor string
	Query      string
}

// StartOfWeek returns midnight of the Monday that starts d's ISO week, in d's
// location. Sunday belongs to the week that began six days earlier.
func StartOfWeek(d time.Time) time.Time {
	offset := 1 - int(d.Weekday())
	if d.Weekday() == time.Sunday {
		offset = -6
	}
	return time.Date(d.Year(), d.Month(), d.Day()+offset, 0, 0, 0, 0, d.Location())
}

// WeekDays returns Monday..Sunday of ref's week.
func WeekDays(ref time.Time) []time.Time {
	start := StartOfWeek(ref)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, start.Location())
	}
	return days
}

// Matches applies the style, instructor and free-text filters. The text
// filter is a case-insensitive substring match over title+style+level.
func (f Filters) Matches(o domain.ClassOffering) bool {
	if f.Style != "" && f.Style != AllStyles && o.Style != f.Style {
		return false
	}
	if f.Instructor != "" && f.Instructor != AllInstructors && o.InstructorID != f.Instructor {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystack := strings.ToLower(o.Title + o.Style + o.Level)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

// ForDay returns the offerings that recur on day's weekday and pass f, in
// catalog order.
func ForDay(day time.Time, f Filters, offerings []domain.ClassOffering) []domain.ClassOffering {
	out := make([]domain.ClassOffering, 0)
	for _, o := range offerings {
		if o.RecursOn(day.Weekday()) && f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

// Project lazily yields each day of ref's week with its matching offerings.
func Project(ref time.Time, f Filters, offerings []domain.ClassOffering) iter.Seq2[time.Time, []domain.ClassOffering] {
	return func(yield func(time.Time, []domain.ClassOffering) bool) {
		for _, day := range WeekDays(ref) {
			if !yield(day, ForDay(day, f, offerings)) {
				return
			}
		}
	}
}
