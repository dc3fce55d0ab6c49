package sarvcrm

import (
	"fmt"
	"time"
)

// TimeMode selects the textual layout produced by FormatTime.
type TimeMode string

// Formatting modes the API accepts in date, datetime, and time fields.
const (
	TimeModeDate     TimeMode = "date"
	TimeModeDateTime TimeMode = "datetime"
	TimeModeTime     TimeMode = "time"
)

// TimeValue constrains FormatTime inputs to an absolute instant or a
// duration relative to now.
type TimeValue interface {
	time.Time | time.Duration
}

// FormatTime renders a value the way the API expects date-typed fields.
// Durations resolve against the current UTC time first, so a pending
// follow-up can be expressed as FormatTime(TimeModeDate, 72*time.Hour).
// The datetime mode keeps seconds precision and the local UTC offset.
func FormatTime[T TimeValue](mode TimeMode, value T) (string, error) {
	var instant time.Time

	switch v := any(value).(type) {
	case time.Duration:
		instant = time.Now().UTC().Add(v)
	case time.Time:
		instant = v
	}

	switch mode {
	case TimeModeDate:
		return instant.Format("2006-01-02"), nil
	case TimeModeDateTime:
		return instant.Local().Format("2006-01-02T15:04:05-07:00"), nil
	case TimeModeTime:
		return instant.Format("15:04:05"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormatMode, mode)
	}
}
