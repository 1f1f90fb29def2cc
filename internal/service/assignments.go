package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/edutrack/internal/domain"
)

// DefaultDueSoonDays is the forward window of the due-soon view.
const DefaultDueSoonDays = 7

// AssignmentService handles assignment CRUD and its derived views, scoped to
// the active session's partition.
type AssignmentService struct {
	assignments domain.PartitionRepository[domain.AssignmentEntry]
	scope       sessionScope
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignments domain.PartitionRepository[domain.AssignmentEntry], scope sessionScope) *AssignmentService {
	return &AssignmentService{assignments: assignments, scope: scope}
}

// List returns the active user's assignments in insertion order.
func (s *AssignmentService) List(ctx context.Context) ([]domain.AssignmentEntry, error) {
	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.assignments.List(ctx, userID)
}

// Add validates and stores a new assignment for the active user.
// Completed defaults to false unless the caller set it.
func (s *AssignmentService) Add(ctx context.Context, entry domain.AssignmentEntry) (domain.AssignmentEntry, error) {
	entry.Title = strings.TrimSpace(entry.Title)
	entry.Subject = strings.TrimSpace(entry.Subject)
	entry.Description = strings.TrimSpace(entry.Description)

	if entry.Title == "" {
		return domain.AssignmentEntry{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return domain.AssignmentEntry{}, err
	}

	stored, err := s.assignments.Add(ctx, userID, entry)
	if err != nil {
		return domain.AssignmentEntry{}, fmt.Errorf("add assignment: %w", err)
	}
	return stored, nil
}

// Update merges the patch over the matching assignment. Updating an unknown
// id is a silent no-op.
func (s *AssignmentService) Update(ctx context.Context, id string, patch domain.AssignmentPatch) error {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
		if trimmed == "" {
			return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
		}
	}
	if patch.Subject != nil {
		trimmed := strings.TrimSpace(*patch.Subject)
		patch.Subject = &trimmed
	}
	if patch.Description != nil {
		trimmed := strings.TrimSpace(*patch.Description)
		patch.Description = &trimmed
	}

	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return err
	}
	return s.assignments.Update(ctx, userID, id, patch.Apply)
}

// SetCompleted marks the matching assignment done or not done.
func (s *AssignmentService) SetCompleted(ctx context.Context, id string, completed bool) error {
	return s.Update(ctx, id, domain.AssignmentPatch{Completed: &completed})
}

// Delete removes the matching assignment; idempotent.
func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return err
	}
	return s.assignments.Delete(ctx, userID, id)
}

// DeleteAll removes the active user's entire assignment list.
func (s *AssignmentService) DeleteAll(ctx context.Context) error {
	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return err
	}
	return s.assignments.DeleteAll(ctx, userID)
}

// Filtered returns all assignments ordered by ascending due date, narrowed
// by the given filter.
func (s *AssignmentService) Filtered(ctx context.Context, filter domain.AssignmentFilter) ([]domain.AssignmentEntry, error) {
	if filter == "" {
		filter = domain.FilterAll
	}
	if !domain.ValidFilter(filter) {
		return nil, fmt.Errorf("%w: filter must be all, pending, or completed", domain.ErrInvalidInput)
	}

	assignments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAssignments(assignments, filter), nil
}

// DueSoon returns the assignments due within the given number of days from
// today, ordered by ascending due date. Non-positive days means the default
// 7-day window.
func (s *AssignmentService) DueSoon(ctx context.Context, days int) ([]domain.AssignmentEntry, error) {
	if days <= 0 {
		days = DefaultDueSoonDays
	}
	assignments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return DueSoon(assignments, time.Now(), days), nil
}
