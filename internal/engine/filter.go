package engine

import (
	"sort"
	"strings"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

// Filter narrows the mission list. Every populated field must match
// (AND semantics); zero values mean "any".
type Filter struct {
	Search   string // case-insensitive substring over title+description
	Status   Status
	Priority Priority
	Category string
}

func (f Filter) matches(t storage.Task) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	if f.Status != "" && StatusFromStored(t.Status) != f.Status {
		return false
	}
	if f.Priority != "" && PriorityFromStored(t.Priority) != f.Priority {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// FilterTasks returns the missions matching the filter, input order
// preserved.
func FilterTasks(tasks []storage.Task, f Filter) []storage.Task {
	var out []storage.Task
	for _, t := range tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// SortBy names a mission sort key.
type SortBy string

const (
	SortByTitle     SortBy = "title"
	SortByDueDate   SortBy = "dueDate"
	SortByPriority  SortBy = "priority"
	SortByStatus    SortBy = "status"
	SortByCreatedAt SortBy = "createdAt"
)

// SortTasks stable-sorts a copy of the missions. Tasks without a due date
// sort after all dated tasks regardless of direction.
func SortTasks(tasks []storage.Task, by SortBy, ascending bool) []storage.Task {
	out := make([]storage.Task, len(tasks))
	copy(out, tasks)

	less := func(a, b storage.Task) int {
		switch by {
		case SortByTitle:
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		case SortByPriority:
			return PriorityFromStored(a.Priority).Ordinal() - PriorityFromStored(b.Priority).Ordinal()
		case SortByStatus:
			return StatusFromStored(a.Status).Ordinal() - StatusFromStored(b.Status).Ordinal()
		default: // createdAt
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if by == SortByDueDate {
			// Undated tasks always last, in both directions.
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return false
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			}
			if ascending {
				return a.DueDate.Before(*b.DueDate)
			}
			return b.DueDate.Before(*a.DueDate)
		}
		c := less(a, b)
		if ascending {
			return c < 0
		}
		return c > 0
	})
	return out
}

// GroupStats is the aggregate for one category or priority bucket.
type GroupStats struct {
	Key            string
	Total          int
	Completed      int
	CompletionRate float64 // completed/total, 0 when total is 0
	XPEarned       int     // summed XP of completed missions
}

// AggregateByCategory groups missions by category. Buckets are returned
// sorted by key for stable display.
func AggregateByCategory(tasks []storage.Task) []GroupStats {
	return aggregate(tasks, func(t storage.Task) string { return t.Category })
}

// AggregateByPriority groups missions by canonical priority letter,
// ordered S first.
func AggregateByPriority(tasks []storage.Task) []GroupStats {
	stats := aggregate(tasks, func(t storage.Task) string {
		return string(PriorityFromStored(t.Priority))
	})
	sort.Slice(stats, func(i, j int) bool {
		return Priority(stats[i].Key).Ordinal() > Priority(stats[j].Key).Ordinal()
	})
	return stats
}

func aggregate(tasks []storage.Task, keyOf func(storage.Task) string) []GroupStats {
	byKey := map[string]*GroupStats{}
	for _, t := range tasks {
		key := keyOf(t)
		g, ok := byKey[key]
		if !ok {
			g = &GroupStats{Key: key}
			byKey[key] = g
		}
		g.Total++
		if StatusFromStored(t.Status) == StatusCompleted {
			g.Completed++
			g.XPEarned += t.XPValue
		}
	}

	out := make([]GroupStats, 0, len(byKey))
	for _, g := range byKey {
		if g.Total > 0 {
			g.CompletionRate = float64(g.Completed) / float64(g.Total)
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
