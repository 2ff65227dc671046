package sessions

import "time"

// Calendar maps each weekday to the size of its base adjacency window: the
// number of calendar days after that weekday still counted as the "next
// working day". Kept as a plain data map so an alternate calendar can be
// swapped in without touching the segmentation algorithm.
type Calendar map[time.Weekday]int

// DefaultCalendar returns the Monday-Friday working week: Monday through
// Thursday reach only the next day, while Friday's window spans the weekend
// to the following Monday.
func DefaultCalendar() Calendar {
	return Calendar{
		time.Monday:    1,
		time.Tuesday:   1,
		time.Wednesday: 1,
		time.Thursday:  1,
		time.Friday:    3,
		time.Saturday:  2,
		time.Sunday:    1,
	}
}

// NextWorkingDays returns the dates considered contiguous with day: every
// date from the day after it up to the base window size plus fuzz extra
// slack days, inclusive.
func (c Calendar) NextWorkingDays(day time.Time, fuzz int) []time.Time {
	count := c[day.Weekday()] + fuzz
	days := make([]time.Time, 0, count)
	for i := 1; i <= count; i++ {
		days = append(days, day.AddDate(0, 0, i))
	}
	return days
}

// Session is an unbroken run of commit activity, inclusive on both ends.
type Session struct {
	Start time.Time
	End   time.Time
}

// Date builds the midnight-UTC time all commit dates are normalized to.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Segment partitions an ascending sequence of distinct commit dates into
// work sessions. Consecutive dates stay in the same session while the later
// one falls inside the earlier one's adjacency window; the first date
// outside that window starts a new session.
//
// dates must be non-empty, sorted ascending, duplicate-free and normalized
// to midnight UTC; fuzz must be >= 0. Callers filter out repositories with
// no commit dates before segmenting.
func Segment(dates []time.Time, fuzz int, cal Calendar) []Session {
	result := []Session{{Start: dates[0], End: dates[0]}}

	for i := 1; i < len(dates); i++ {
		yesterday, today := dates[i-1], dates[i]
		if inWindow(cal.NextWorkingDays(yesterday, fuzz), today) {
			result[len(result)-1].End = today
		} else {
			result = append(result, Session{Start: today, End: today})
		}
	}

	return result
}

func inWindow(days []time.Time, day time.Time) bool {
	for _, d := range days {
		if d.Equal(day) {
			return true
		}
	}
	return false
}
