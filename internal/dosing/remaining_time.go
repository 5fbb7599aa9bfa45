package dosing

import (
	"errors"
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
)

// ErrEmptyHistory is returned when a next intake time is requested without
// any recorded intake.
var ErrEmptyHistory = errors.New("no history to compute next intake")

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// TimeFormatter renders instants and durations for display.
type TimeFormatter interface {
	FormatInstant(t time.Time) string
	FormatDuration(d time.Duration) string
}

// NextAllowedIntake is the latest intake time plus CheckInInterval.
func NextAllowedIntake(history []domain.DoseIntake) (time.Time, error) {
	latest, ok := LatestIntake(history)
	if !ok {
		return time.Time{}, ErrEmptyHistory
	}
	return latest.TimeOfIntake.Add(CheckInInterval), nil
}

// RemainingDuration is next - now. It is negative once next has passed.
func RemainingDuration(now, next time.Time) time.Duration {
	return next.Sub(now)
}

type FormattedRemainingTime struct {
	Next      time.Time
	Duration  time.Duration
	Remaining string
	Until     string
}

// FormatRemainingTime computes the wait until the next allowed intake and
// renders it with f.
func FormatRemainingTime(now time.Time, history []domain.DoseIntake, f TimeFormatter) (FormattedRemainingTime, error) {
	next, err := NextAllowedIntake(history)
	if err != nil {
		return FormattedRemainingTime{}, err
	}
	d := RemainingDuration(now, next)
	return FormattedRemainingTime{
		Next:      next,
		Duration:  d,
		Remaining: f.FormatDuration(d),
		Until:     f.FormatInstant(next),
	}, nil
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
