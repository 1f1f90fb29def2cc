package handler

import (
	"time"

	"github.com/msomdec/edutrack/internal/domain"
	"github.com/msomdec/edutrack/internal/service"
)

// UserDTO is the JSON representation of a user. The password never leaves
// the core.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Dark     bool   `json:"dark"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Dark:     u.DarkPreference,
	}
}

// ClassDTO is the JSON representation of a class entry.
type ClassDTO struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Room      string `json:"room"`
}

func toClassDTO(c domain.ClassEntry) ClassDTO {
	return ClassDTO{
		ID:        c.ID,
		Day:       c.Day,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Subject:   c.Subject,
		Teacher:   c.Teacher,
		Room:      c.Room,
	}
}

func toClassDTOs(classes []domain.ClassEntry) []ClassDTO {
	dtos := make([]ClassDTO, len(classes))
	for i, c := range classes {
		dtos[i] = toClassDTO(c)
	}
	return dtos
}

// AssignmentDTO is the JSON representation of an assignment. Overdue is a
// derived decoration: due strictly in the past and not yet completed.
type AssignmentDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	DueDate     string `json:"dueDate"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Overdue     bool   `json:"overdue"`
}

func toAssignmentDTO(a domain.AssignmentEntry, now time.Time) AssignmentDTO {
	return AssignmentDTO{
		ID:          a.ID,
		Title:       a.Title,
		Subject:     a.Subject,
		DueDate:     a.DueDate,
		Description: a.Description,
		Completed:   a.Completed,
		Overdue:     !a.Completed && service.IsOverdue(a.DueDate, now),
	}
}

func toAssignmentDTOs(assignments []domain.AssignmentEntry, now time.Time) []AssignmentDTO {
	dtos := make([]AssignmentDTO, len(assignments))
	for i, a := range assignments {
		dtos[i] = toAssignmentDTO(a, now)
	}
	return dtos
}
