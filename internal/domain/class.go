package domain

// Weekdays lists the seven schedule day names in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ValidDay reports whether day is one of the seven weekday names.
func ValidDay(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ClassEntry is one recurring class in a user's weekly schedule. Overlapping
// classes on the same day are accepted as-is; no collision check is made.
type ClassEntry struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Room      string `json:"room"`
}

func (c ClassEntry) EntryID() string { return c.ID }

func (c ClassEntry) WithID(id string) ClassEntry {
	c.ID = id
	return c
}

// ClassPatch updates selected fields of a ClassEntry.
// Nil fields are left unchanged.
type ClassPatch struct {
	Day       *string `json:"day"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Subject   *string `json:"subject"`
	Teacher   *string `json:"teacher"`
	Room      *string `json:"room"`
}

// Apply merges the patch over e, overwriting only the fields that are set.
func (p ClassPatch) Apply(e ClassEntry) ClassEntry {
	if p.Day != nil {
		e.Day = *p.Day
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Subject != nil {
		e.Subject = *p.Subject
	}
	if p.Teacher != nil {
		e.Teacher = *p.Teacher
	}
	if p.Room != nil {
		e.Room = *p.Room
	}
	return e
}
