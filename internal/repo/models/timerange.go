package models

import (
	"time"

	"github.com/nikmy/interviewme/pkg/errors"
)

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time `json:"start" bson:"start"`
	End   time.Time `json:"end"   bson:"end"`
}

const (
	TimeRangeFieldStart = "start"
	TimeRangeFieldEnd   = "end"
)

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, errors.Error("time range start %s is not before end %s", start, end)
	}
	return TimeRange{Start: start.UTC(), End: end.UTC()}, nil
}

func Starting(start time.Time, d time.Duration) (TimeRange, error) {
	return NewTimeRange(start, start.Add(d))
}

// Contains reports whether other lies fully inside r.
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// Overlaps reports whether r and other share at least one instant.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

func (r TimeRange) Equal(other TimeRange) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Covered reports whether the union of ranges covers target without gaps.
func Covered(target TimeRange, ranges []TimeRange) bool {
	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sortRanges(sorted)

	reached := target.Start
	for _, r := range sorted {
		if !reached.Before(target.End) {
			break
		}
		if r.End.Before(reached) || r.End.Equal(reached) {
			continue
		}
		if r.Start.After(reached) {
			return false
		}
		reached = r.End
	}

	return !reached.Before(target.End)
}
