package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talha426/Shadow-Console-Track/internal/diag"
	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Category    string
	Priority    Priority
	Status      Status
	StartDate   *time.Time
	DueDate     *time.Time
}

// CreateTask validates the input, freezes the XP value from the priority
// tier and persists the new mission.
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*storage.Task, error) {
	t, err := s.buildTask(in)
	if err != nil {
		s.recordFailure(diag.KindMission, diag.SeverityHigh, "ADD_TASK", err)
		return nil, err
	}

	if err := s.tasks.Insert(ctx, *t); err != nil {
		s.recordFailure(diag.KindMission, diag.SeverityHigh, "ADD_TASK", err)
		return nil, err
	}

	s.recordSuccess("ADD_TASK", map[string]string{
		"taskId":   t.ID,
		"title":    t.Title,
		"priority": t.Priority,
	})
	s.log.Info("mission created", zap.String("id", t.ID), zap.String("title", t.Title))
	return t, nil
}

func (s *Service) buildTask(in CreateTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, ValidationError{Field: "category"}
	}

	priority := in.Priority
	if !priority.IsValid() {
		priority = DefaultPriority
	}
	status := in.Status
	if !status.IsValid() {
		status = StatusPending
	}

	now := s.now()
	t := &storage.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Category:    category,
		Priority:    string(priority),
		Status:      string(status),
		StartDate:   in.StartDate,
		DueDate:     in.DueDate,
		XPValue:     XPForPriority(priority),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == StatusCompleted {
		completed := now
		t.CompletedAt = &completed
	}
	return t, nil
}
