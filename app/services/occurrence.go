package services

import (
	"fmt"
	"time"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

// This file is the only place day arithmetic happens. Every component that
// needs a day boundary or an occurrence date consumes these functions; the
// admin backend this replaces recomputed day ranges ad hoc per call site and
// corrupted bookings onto the wrong weekday.

// DayStart truncates t to 00:00 in the tenant timezone.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayRange returns the half-open range [dayStart, dayStart+24h) covering t.
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := DayStart(t, loc)
	return start, start.Add(24 * time.Hour)
}

// NextOccurrence returns the next calendar date (today included) whose
// weekday matches, at the day boundary.
func NextOccurrence(ref time.Time, day time.Weekday, loc *time.Location) time.Time {
	start := DayStart(ref, loc)
	offset := (int(day) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, offset)
}

// ResolveOccurrence maps a class definition plus an optional requested date to
// the concrete occurrence date. With no requested date the next occurrence
// relative to now is used; a requested date on the wrong weekday is rejected
// rather than silently shifted.
func ResolveOccurrence(class *models.ClassDefinition, requested *time.Time, now time.Time, loc *time.Location) (time.Time, error) {
	day := time.Weekday(class.DayOfWeek)
	if requested == nil {
		return NextOccurrence(now, day, loc), nil
	}

	occurrence := DayStart(*requested, loc)
	if occurrence.Weekday() != day {
		return time.Time{}, Errf(KindValidation,
			"class %q meets on %s, not %s", class.Name, day, occurrence.Weekday())
	}
	return occurrence, nil
}

// OccurrenceWindow places the class's wall-clock start and end times onto a
// concrete occurrence date in the tenant timezone.
func OccurrenceWindow(class *models.ClassDefinition, occurrenceDate time.Time, loc *time.Location) (time.Time, time.Time, error) {
	start, err := clockOnDate(class.StartTime, occurrenceDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, Errf(KindValidation, "class %q has an invalid start time: %v", class.Name, err)
	}
	end, err := clockOnDate(class.EndTime, occurrenceDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, Errf(KindValidation, "class %q has an invalid end time: %v", class.Name, err)
	}
	return start, end, nil
}

func clockOnDate(clock string, date time.Time, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		// time columns come back as 15:04:05 from some drivers
		parsed, err = time.Parse("15:04:05", clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot parse clock time %q", clock)
		}
	}
	day := DayStart(date, loc)
	return day.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute), nil
}
