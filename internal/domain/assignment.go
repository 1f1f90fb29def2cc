package domain

// AssignmentEntry is one tracked assignment in a user's list.
type AssignmentEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	DueDate     string `json:"dueDate"` // "YYYY-MM-DD" or empty
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (a AssignmentEntry) EntryID() string { return a.ID }

func (a AssignmentEntry) WithID(id string) AssignmentEntry {
	a.ID = id
	return a
}

// AssignmentPatch updates selected fields of an AssignmentEntry.
// Nil fields are left unchanged.
type AssignmentPatch struct {
	Title       *string `json:"title"`
	Subject     *string `json:"subject"`
	DueDate     *string `json:"dueDate"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Apply merges the patch over e, overwriting only the fields that are set.
func (p AssignmentPatch) Apply(e AssignmentEntry) AssignmentEntry {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Subject != nil {
		e.Subject = *p.Subject
	}
	if p.DueDate != nil {
		e.DueDate = *p.DueDate
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Completed != nil {
		e.Completed = *p.Completed
	}
	return e
}

// AssignmentFilter selects which assignments a filtered listing returns.
type AssignmentFilter string

const (
	FilterAll       AssignmentFilter = "all"
	FilterPending   AssignmentFilter = "pending"
	FilterCompleted AssignmentFilter = "completed"
)

// ValidFilter reports whether f is one of the three assignment filters.
func ValidFilter(f AssignmentFilter) bool {
	return f == FilterAll || f == FilterPending || f == FilterCompleted
}
