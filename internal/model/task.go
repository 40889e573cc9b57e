package model

// Task is a single todo item. Optional text fields are nil when absent
// so they serialize as JSON null.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"dueDate"`  // calendar date, YYYY-MM-DD
	Category    *string `json:"category"` // work, personal, urgent, other (not enforced)
}

// Suggested task categories.
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryUrgent   = "urgent"
	CategoryOther    = "other"
)

// Clone returns a deep copy so callers cannot mutate shared pointer fields.
func (t Task) Clone() Task {
	out := t
	out.Description = cloneString(t.Description)
	out.DueDate = cloneString(t.DueDate)
	out.Category = cloneString(t.Category)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr is a helper for optional string fields.
func StringPtr(s string) *string {
	return &s
}
