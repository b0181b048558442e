package search

import (
    "testing"
)

func TestMinutesOfDay(t *testing.T) {
    cases := []struct {
        in   string
        want int
    }{
        {"00:00", 0},
        {"09:00", 540},
        {"15:30", 930},
        {"23:59", 1439},
        {"garbage", 0},
        {"", 0},
    }

    for _, c := range cases {
        if got := minutesOfDay(c.in); got != c.want {
            t.Errorf("minutesOfDay(%q) = %d, want %d", c.in, got, c.want)
        }
    }
}

func TestConnectionMinutes(t *testing.T) {
    cases := []struct {
        name      string
        arrival   string
        departure string
        want      int
    }{
        {"same day", "15:30", "16:00", 30},
        {"long same-day layover", "09:00", "21:00", 720},
        {"zero gap", "12:00", "12:00", 0},
        {"overnight rollover", "23:45", "00:15", 30},
        {"departure before arrival rolls one day", "15:30", "09:00", 1050},
    }

    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            if got := connectionMinutes(c.arrival, c.departure); got != c.want {
                t.Errorf("connectionMinutes(%q, %q) = %d, want %d", c.arrival, c.departure, got, c.want)
            }
        })
    }
}
