package engine

import "fmt"

// NotFoundError indicates the referenced mission does not exist.
type NotFoundError struct {
	TaskID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("mission %s not found", e.TaskID)
}

// AlreadyCompletedError indicates a completion was requested for a
// mission that is already completed.
type AlreadyCompletedError struct {
	TaskID string
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("mission %s is already completed", e.TaskID)
}

// ValidationError reports a missing required field on mission input.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
