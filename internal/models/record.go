package models

import (
	"fmt"
	"strings"
)

// Status is the completion state of an assignment. The set is open: the
// known values below are the ones the portal offers, other values are
// stored as given.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// KnownStatuses lists the statuses offered to users, in display order.
var KnownStatuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Known reports whether s is one of KnownStatuses.
func (s Status) Known() bool {
	for _, k := range KnownStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// Slug returns the lower-cased status with its first space replaced by a
// dash, e.g. "In Progress" -> "in-progress".
func (s Status) Slug() string {
	return strings.Replace(strings.ToLower(string(s)), " ", "-", 1)
}

// Assignment is a tracked deliverable. Assignments are identified by their
// position in UserRecord.Assignments.
type Assignment struct {
	Name    string `json:"name"`
	Week    string `json:"week"`
	DueDate string `json:"dueDate"`
	Status  Status `json:"status"`
}

const (
	// FirstWeek and LastWeek bound the weeks that accept reflections.
	FirstWeek = 1
	LastWeek  = 3

	// TotalReflectionWeeks and TotalAssignments are the fixed denominators
	// of the overall progress.
	TotalReflectionWeeks = LastWeek - FirstWeek + 1
	TotalAssignments     = 2
)

// WeekLabel returns the verifications map key for a week, e.g. "week2".
func WeekLabel(week int) string {
	return fmt.Sprintf("week%d", week)
}

// ValidWeek reports whether week accepts reflections.
func ValidWeek(week int) bool {
	return week >= FirstWeek && week <= LastWeek
}

// UserRecord is the per-account bundle of domain state and the unit of
// persistence for every per-user mutation.
type UserRecord struct {
	// Verifications maps a week label to the submitted reflection text.
	Verifications map[string]string `json:"verifications"`
	Assignments   []Assignment      `json:"assignments"`
}

// DefaultAssignments returns the assignments seeded for every new account.
func DefaultAssignments() []Assignment {
	return []Assignment{
		{Name: "Assignment 1", Week: "Week 2", DueDate: "2025-02-10", Status: StatusPending},
		{Name: "Assignment 2", Week: "Week 3", DueDate: "2025-02-17", Status: StatusPending},
	}
}

// NewUserRecord returns a fresh record with no reflections and the default
// assignments.
func NewUserRecord() *UserRecord {
	return &UserRecord{
		Verifications: map[string]string{},
		Assignments:   DefaultAssignments(),
	}
}
