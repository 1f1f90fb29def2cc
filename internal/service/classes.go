package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/edutrack/internal/domain"
)

// sessionScope resolves the active partition key. The planner services never
// accept a user id from callers; isolation is structural, not conventional.
type sessionScope interface {
	ActiveUserID(ctx context.Context) (string, error)
}

// ClassService handles weekly schedule CRUD and its derived views, scoped to
// the active session's partition.
type ClassService struct {
	classes domain.PartitionRepository[domain.ClassEntry]
	scope   sessionScope
}

// NewClassService creates a new ClassService.
func NewClassService(classes domain.PartitionRepository[domain.ClassEntry], scope sessionScope) *ClassService {
	return &ClassService{classes: classes, scope: scope}
}

// List returns the active user's classes in insertion order.
func (s *ClassService) List(ctx context.Context) ([]domain.ClassEntry, error) {
	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.classes.List(ctx, userID)
}

// Add validates and stores a new class for the active user.
func (s *ClassService) Add(ctx context.Context, entry domain.ClassEntry) (domain.ClassEntry, error) {
	entry.Subject = strings.TrimSpace(entry.Subject)
	entry.Teacher = strings.TrimSpace(entry.Teacher)
	entry.Room = strings.TrimSpace(entry.Room)

	if err := validateClass(entry.Day, entry.Subject); err != nil {
		return domain.ClassEntry{}, err
	}

	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return domain.ClassEntry{}, err
	}

	stored, err := s.classes.Add(ctx, userID, entry)
	if err != nil {
		return domain.ClassEntry{}, fmt.Errorf("add class: %w", err)
	}
	return stored, nil
}

// Update merges the patch over the matching class. Updating an unknown id is
// a silent no-op.
func (s *ClassService) Update(ctx context.Context, id string, patch domain.ClassPatch) error {
	if patch.Subject != nil {
		trimmed := strings.TrimSpace(*patch.Subject)
		patch.Subject = &trimmed
		if trimmed == "" {
			return fmt.Errorf("%w: subject is required", domain.ErrInvalidInput)
		}
	}
	if patch.Day != nil && !domain.ValidDay(*patch.Day) {
		return fmt.Errorf("%w: day must be one of the seven weekday names", domain.ErrInvalidInput)
	}
	if patch.Teacher != nil {
		trimmed := strings.TrimSpace(*patch.Teacher)
		patch.Teacher = &trimmed
	}
	if patch.Room != nil {
		trimmed := strings.TrimSpace(*patch.Room)
		patch.Room = &trimmed
	}

	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return err
	}
	return s.classes.Update(ctx, userID, id, patch.Apply)
}

// Delete removes the matching class; idempotent.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return err
	}
	return s.classes.Delete(ctx, userID, id)
}

// DeleteAll removes the active user's entire schedule.
func (s *ClassService) DeleteAll(ctx context.Context) error {
	userID, err := s.scope.ActiveUserID(ctx)
	if err != nil {
		return err
	}
	return s.classes.DeleteAll(ctx, userID)
}

// Today returns the classes scheduled for the current weekday, ordered by
// start time.
func (s *ClassService) Today(ctx context.Context) ([]domain.ClassEntry, error) {
	classes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return TodaysClasses(classes, time.Now()), nil
}

// ForDay returns the classes scheduled for the given weekday, ordered by
// start time.
func (s *ClassService) ForDay(ctx context.Context, day string) ([]domain.ClassEntry, error) {
	if !domain.ValidDay(day) {
		return nil, fmt.Errorf("%w: day must be one of the seven weekday names", domain.ErrInvalidInput)
	}
	classes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return ClassesForDay(classes, day), nil
}

func validateClass(day, subject string) error {
	if subject == "" {
		return fmt.Errorf("%w: subject is required", domain.ErrInvalidInput)
	}
	if !domain.ValidDay(day) {
		return fmt.Errorf("%w: day must be one of the seven weekday names", domain.ErrInvalidInput)
	}
	return nil
}
