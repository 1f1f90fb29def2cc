// Package repository implements the store-backed repositories of the
// planner: the user directory, the active-session record, the legacy theme
// flag, and the generic per-user partition of schedule entries.
//
// Every repository owns exactly one store record and mutates it as a full
// read-modify-write under its own mutex, so readers never observe a partial
// write.
package repository

import "github.com/msomdec/edutrack/internal/domain"

// Store record keys. Kept stable so data written by earlier builds keeps
// loading.
const (
	usersKey       = "edutrack_users"
	sessionKey     = "edutrack_current_user"
	classesKey     = "edutrack_classes_map"
	assignmentsKey = "edutrack_assignments_map"
	darkKey        = "edutrack_dark"
)

// NewClassPartition creates the per-user class schedule partition.
func NewClassPartition(store domain.Store) *Partition[domain.ClassEntry] {
	return newPartition[domain.ClassEntry](store, classesKey)
}

// NewAssignmentPartition creates the per-user assignment partition.
func NewAssignmentPartition(store domain.Store) *Partition[domain.AssignmentEntry] {
	return newPartition[domain.AssignmentEntry](store, assignmentsKey)
}
