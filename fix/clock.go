package fix

import (
	"fmt"
	"time"
)

const (
	utcTimestampLayoutMillis = "20060102-15:04:05.000"
	utcTimestampLayout       = "20060102-15:04:05"
)

// Clock supplies the current time to the Encoder. Production code uses
// SystemClock; tests inject a FixedClock so SendingTime is deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock is the default Clock, backed by the wall clock.
var SystemClock Clock = systemClock{}

// FixedClock is a Clock that always returns T, for tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// FormatUTCTimestamp renders t in the tag 52/60 UTCTIMESTAMP grammar
// (YYYYMMDD-HH:MM:SS.sss).
func FormatUTCTimestamp(t time.Time) string {
	return t.UTC().Format(utcTimestampLayoutMillis)
}

// ParseUTCTimestamp parses a UTCTIMESTAMP value, with or without the
// optional millisecond component.
func ParseUTCTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(utcTimestampLayoutMillis, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(utcTimestampLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("fix: invalid UTCTIMESTAMP %q", s)
}
