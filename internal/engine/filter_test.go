package engine

import (
	"testing"
	"time"

	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

func sampleTasks() []storage.Task {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	due := func(d int) *time.Time {
		at := base.AddDate(0, 0, d)
		return &at
	}
	return []storage.Task{
		{ID: "1", Title: "Write report", Category: "Work", Priority: "B", Status: "pending", XPValue: 35, CreatedAt: base, DueDate: due(2)},
		{ID: "2", Title: "gym session", Category: "Fitness", Priority: "C", Status: "completed", XPValue: 20, CreatedAt: base.Add(time.Hour), CompletedAt: due(0)},
		{ID: "3", Title: "Read chapter", Category: "Study", Priority: "E", Status: "in-progress", XPValue: 5, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Title: "Slay the dragon", Category: "Work", Priority: "S", Status: "completed", XPValue: 75, CreatedAt: base.Add(3 * time.Hour), DueDate: due(1), CompletedAt: due(0)},
	}
}

func TestFilterTasksANDSemantics(t *testing.T) {
	tasks := sampleTasks()

	got := FilterTasks(tasks, Filter{Category: "Work", Status: StatusCompleted})
	if len(got) != 1 || got[0].ID != "4" {
		t.Fatalf("Work+completed = %+v, want task 4 only", got)
	}

	// Search is case-insensitive over title and description.
	got = FilterTasks(tasks, Filter{Search: "GYM"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("search GYM = %+v, want task 2", got)
	}

	// Zero filter passes everything through in input order.
	got = FilterTasks(tasks, Filter{})
	if len(got) != len(tasks) {
		t.Fatalf("empty filter dropped tasks: %d of %d", len(got), len(tasks))
	}
	for i := range got {
		if got[i].ID != tasks[i].ID {
			t.Fatalf("empty filter reordered tasks")
		}
	}
}

func TestSortTasksDueDateUndatedLast(t *testing.T) {
	tasks := sampleTasks()

	asc := SortTasks(tasks, SortByDueDate, true)
	if asc[len(asc)-1].DueDate != nil {
		t.Fatalf("ascending: undated task not last")
	}
	desc := SortTasks(tasks, SortByDueDate, false)
	if desc[len(desc)-1].DueDate != nil {
		t.Fatalf("descending: undated task not last")
	}
	if asc[0].ID != "4" {
		t.Fatalf("ascending first = %s, want 4 (earliest due)", asc[0].ID)
	}
	if desc[0].ID != "1" {
		t.Fatalf("descending first = %s, want 1 (latest due)", desc[0].ID)
	}
}

func TestSortTasksPriority(t *testing.T) {
	tasks := sampleTasks()

	desc := SortTasks(tasks, SortByPriority, false)
	if desc[0].Priority != "S" || desc[len(desc)-1].Priority != "E" {
		t.Fatalf("priority descending = %s..%s, want S..E", desc[0].Priority, desc[len(desc)-1].Priority)
	}

	// Input must be left untouched.
	if tasks[0].ID != "1" || tasks[3].ID != "4" {
		t.Fatalf("SortTasks mutated its input")
	}
}

func TestSortTasksStable(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	tasks := []storage.Task{
		{ID: "a", Title: "same", Priority: "C", CreatedAt: base},
		{ID: "b", Title: "same", Priority: "C", CreatedAt: base.Add(time.Minute)},
		{ID: "c", Title: "same", Priority: "C", CreatedAt: base.Add(2 * time.Minute)},
	}
	got := SortTasks(tasks, SortByPriority, true)
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("equal keys reordered: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestAggregateByCategory(t *testing.T) {
	stats := AggregateByCategory(sampleTasks())
	if len(stats) != 3 {
		t.Fatalf("got %d buckets, want 3", len(stats))
	}
	// Keys come back sorted.
	if stats[0].Key != "Fitness" || stats[1].Key != "Study" || stats[2].Key != "Work" {
		t.Fatalf("bucket order = %s %s %s", stats[0].Key, stats[1].Key, stats[2].Key)
	}

	work := stats[2]
	if work.Total != 2 || work.Completed != 1 {
		t.Fatalf("Work bucket = %+v", work)
	}
	if work.CompletionRate != 0.5 {
		t.Fatalf("Work completion rate = %v, want 0.5", work.CompletionRate)
	}
	if work.XPEarned != 75 {
		t.Fatalf("Work XP earned = %d, want 75 (completed missions only)", work.XPEarned)
	}
}

func TestAggregateByPriorityOrder(t *testing.T) {
	stats := AggregateByPriority(sampleTasks())
	for i := 1; i < len(stats); i++ {
		if Priority(stats[i-1].Key).Ordinal() < Priority(stats[i].Key).Ordinal() {
			t.Fatalf("priorities not ordered S-first: %v", stats)
		}
	}
}
