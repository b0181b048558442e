package search

import (
    "time"
)

// minutesOfDay converts an "HH:MM" timetable entry to minutes past midnight.
// Schedules are validated at load time, so a parse failure maps to 0 rather
// than an error, the same way the route handlers treat unparseable times.
func minutesOfDay(hhmm string) int {
    t, err := time.Parse("15:04", hhmm)
    if err != nil {
        return 0
    }
    return t.Hour()*60 + t.Minute()
}

// connectionMinutes returns the gap between arriving at a station and the
// connecting departure. Times carry no date, so a departure numerically
// earlier than the arrival is taken to be the next day; at most one day is
// ever added.
func connectionMinutes(arrival, departure string) int {
    gap := minutesOfDay(departure) - minutesOfDay(arrival)
    if gap < 0 {
        gap += 24 * 60
    }
    return gap
}
