package service

import (
	"slices"
	"strings"
	"time"

	"github.com/msomdec/edutrack/internal/domain"
)

// Derived views are pure functions over repository snapshots, recomputed on
// every read. Ordering relies on the fixed "HH:MM" and "YYYY-MM-DD" formats
// sorting correctly as strings; sorts are stable so ties keep insertion order.

const dueDateLayout = "2006-01-02"

// TodaysClasses returns the classes scheduled for now's weekday, ordered by
// ascending start time.
func TodaysClasses(classes []domain.ClassEntry, now time.Time) []domain.ClassEntry {
	return ClassesForDay(classes, now.Weekday().String())
}

// ClassesForDay returns the classes scheduled for the given weekday, ordered
// by ascending start time.
func ClassesForDay(classes []domain.ClassEntry, day string) []domain.ClassEntry {
	out := make([]domain.ClassEntry, 0, len(classes))
	for _, c := range classes {
		if c.Day == day {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.ClassEntry) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
	return out
}

// DueSoon returns the assignments whose due date falls within
// [today, today+days] inclusive, ordered by ascending due date. Entries with
// an empty or unparseable due date are excluded.
func DueSoon(assignments []domain.AssignmentEntry, now time.Time, days int) []domain.AssignmentEntry {
	today := dateOf(now)
	out := make([]domain.AssignmentEntry, 0, len(assignments))
	for _, a := range assignments {
		due, ok := parseDueDate(a.DueDate)
		if !ok {
			continue
		}
		diff := int(due.Sub(today).Hours() / 24)
		if diff >= 0 && diff <= days {
			out = append(out, a)
		}
	}
	sortByDueDate(out)
	return out
}

// IsOverdue reports whether dueDate is non-empty and strictly before today.
// Time of day is ignored on both sides.
func IsOverdue(dueDate string, now time.Time) bool {
	due, ok := parseDueDate(dueDate)
	if !ok {
		return false
	}
	return due.Before(dateOf(now))
}

// FilterAssignments returns all assignments ordered by ascending due date,
// narrowed to the given filter.
func FilterAssignments(assignments []domain.AssignmentEntry, filter domain.AssignmentFilter) []domain.AssignmentEntry {
	sorted := slices.Clone(assignments)
	sortByDueDate(sorted)

	if filter == domain.FilterAll {
		return sorted
	}
	out := sorted[:0]
	for _, a := range sorted {
		if a.Completed == (filter == domain.FilterCompleted) {
			out = append(out, a)
		}
	}
	return out
}

func sortByDueDate(assignments []domain.AssignmentEntry) {
	slices.SortStableFunc(assignments, func(a, b domain.AssignmentEntry) int {
		return strings.Compare(a.DueDate, b.DueDate)
	})
}

// dateOf normalizes t to midnight UTC of its calendar date, the same instant
// space parseDueDate produces.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDueDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dueDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
