package domain

// Task represents one user-created todo item.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Filter names a view constraint over the task collection.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Valid reports whether f is one of the three known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Matches reports whether t belongs to the view named by f.
// An unknown filter matches nothing.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	}
	return false
}
