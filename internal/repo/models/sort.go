package models

import (
	"cmp"
	"slices"
)

func compareRanges(a, b TimeRange) int {
	return cmp.Or(
		a.Start.Compare(b.Start),
		a.End.Compare(b.End),
	)
}

func sortRanges(ranges []TimeRange) {
	slices.SortFunc(ranges, compareRanges)
}

// SortInterviews orders by start time, ties broken by id.
func SortInterviews(interviews []Interview) {
	slices.SortStableFunc(interviews, func(a, b Interview) int {
		return cmp.Or(
			a.When.Start.Compare(b.When.Start),
			cmp.Compare(a.ID, b.ID),
		)
	})
}

// SortAvailability orders by start time, then owner, then id.
func SortAvailability(slots []Availability) {
	slices.SortStableFunc(slots, func(a, b Availability) int {
		return cmp.Or(
			a.When.Start.Compare(b.When.Start),
			cmp.Compare(a.PersonID, b.PersonID),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
