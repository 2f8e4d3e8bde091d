package fix

import (
	"testing"
	"time"
)

func TestFormatUTCTimestamp(t *testing.T) {
	ts := time.Date(2023, 12, 1, 10, 30, 0, 0, time.UTC)
	got := FormatUTCTimestamp(ts)
	want := "20231201-10:30:00.000"
	if got != want {
		t.Errorf("FormatUTCTimestamp() = %q, want %q", got, want)
	}
}

func TestParseUTCTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		fail bool
	}{
		{"20231201-10:30:00.000", false},
		{"20231201-10:30:00", false},
		{"not-a-timestamp", true},
	}
	for _, c := range cases {
		_, err := ParseUTCTimestamp(c.in)
		if c.fail && err == nil {
			t.Errorf("ParseUTCTimestamp(%q) succeeded, want error", c.in)
		}
		if !c.fail && err != nil {
			t.Errorf("ParseUTCTimestamp(%q) failed: %v", c.in, err)
		}
	}
}

func TestFixedClock(t *testing.T) {
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	c := FixedClock{T: want}
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("FixedClock.Now() = %v, want %v", got, want)
	}
}

func TestSystemClock_ReturnsUTC(t *testing.T) {
	now := SystemClock.Now()
	if now.Location() != time.UTC {
		t.Errorf("SystemClock.Now() location = %v, want UTC", now.Location())
	}
}
