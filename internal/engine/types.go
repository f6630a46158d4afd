package engine

import (
	"fmt"
	"strings"
)

// Priority is the letter rank of a mission. Higher ranks grant more XP.
type Priority string

const (
	PriorityE Priority = "E"
	PriorityD Priority = "D"
	PriorityC Priority = "C"
	PriorityB Priority = "B"
	PriorityA Priority = "A"
	PriorityS Priority = "S"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityE, PriorityD, PriorityC, PriorityB, PriorityA, PriorityS:
		return true
	default:
		return false
	}
}

// Ordinal returns the sort rank of a priority (E lowest, S highest).
// Unknown priorities rank below E.
func (p Priority) Ordinal() int {
	switch p {
	case PriorityE:
		return 1
	case PriorityD:
		return 2
	case PriorityC:
		return 3
	case PriorityB:
		return 4
	case PriorityA:
		return 5
	case PriorityS:
		return 6
	default:
		return 0
	}
}

// DefaultPriority is used when user input is missing/invalid.
const DefaultPriority Priority = PriorityC

// ParsePriority accepts the canonical letter ranks plus the legacy word
// forms that older persisted data may carry. The word forms are mapped
// explicitly rather than merged: low→D, medium→C, high→B, urgent→A, boss→S.
func ParsePriority(input string) (Priority, error) {
	s := strings.TrimSpace(input)
	if p := Priority(strings.ToUpper(s)); len(s) == 1 && p.IsValid() {
		return p, nil
	}
	switch strings.ToLower(s) {
	case "low":
		return PriorityD, nil
	case "medium":
		return PriorityC, nil
	case "high":
		return PriorityB, nil
	case "urgent":
		return PriorityA, nil
	case "boss":
		return PriorityS, nil
	}
	return "", fmt.Errorf("invalid priority: %q", input)
}

// Status is the mission lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Ordinal returns the sort rank of a status.
func (s Status) Ordinal() int {
	switch s {
	case StatusPending:
		return 1
	case StatusInProgress:
		return 2
	case StatusCompleted:
		return 3
	default:
		return 0
	}
}

// ParseStatus accepts the canonical names plus the legacy display forms
// ("Not Started", "In Progress", "Completed") found in old exports.
func ParseStatus(input string) (Status, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "pending", "not started", "not-started":
		return StatusPending, nil
	case "in-progress", "in progress", "active":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("invalid status: %q", input)
}

// PriorityFromStored parses a persisted priority value, falling back to
// the default tier for anything unrecognized.
func PriorityFromStored(s string) Priority {
	p, err := ParsePriority(s)
	if err != nil {
		return DefaultPriority
	}
	return p
}

// StatusFromStored parses a persisted status value, falling back to
// pending for anything unrecognized.
func StatusFromStored(s string) Status {
	st, err := ParseStatus(s)
	if err != nil {
		return StatusPending
	}
	return st
}

// PredefinedCategories is the built-in category set. Missions may also
// carry any custom category string.
var PredefinedCategories = []string{"Study", "Work", "Fitness", "Personal", "Health", "Learning"}
