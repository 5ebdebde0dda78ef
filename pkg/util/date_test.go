package util

import (
    "testing"
    "time"
)

func TestHourLabel(t *testing.T) {
    cases := map[int]string{0: "00:00", 9: "09:00", 23: "23:00", 24: "00:00", -1: "23:00"}
    for in, want := range cases {
        if got := HourLabel(in); got != want {
            t.Fatalf("HourLabel(%d) = %q, want %q", in, got, want)
        }
    }
}

func TestStartOfHour(t *testing.T) {
    in := time.Date(2024, 10, 10, 10, 42, 7, 99, time.UTC)
    got := StartOfHour(in)
    if !got.Equal(time.Date(2024, 10, 10, 10, 0, 0, 0, time.UTC)) {
        t.Fatalf("unexpected start of hour %v", got)
    }
}

func TestTrailingHoursWrapsMidnight(t *testing.T) {
    now := time.Date(2024, 10, 10, 2, 30, 0, 0, time.UTC)
    got := TrailingHours(now, 24)
    if len(got) != 24 {
        t.Fatalf("expected 24 hours, got %d", len(got))
    }
    if got[0] != 3 || got[20] != 23 || got[21] != 0 || got[23] != 2 {
        t.Fatalf("unexpected window %v", got)
    }
}

func TestClampAndRound(t *testing.T) {
    if Clamp(1.7, -1, 1) != 1 || Clamp(-3, -1, 1) != -1 || Clamp(0.2, -1, 1) != 0.2 {
        t.Fatalf("clamp out of bounds")
    }
    if Round3(0.12345) != 0.123 || Round3(-0.6666) != -0.667 {
        t.Fatalf("unexpected rounding")
    }
}
