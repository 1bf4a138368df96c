package model

const EntityName = "task"

type Task struct {
	ID          int64  `db:"id"`
	Description string `db:"description"`
	Completed   bool   `db:"completed"`
}

// Toggled returns a copy of the task with its completion flag flipped.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed

	return t
}
