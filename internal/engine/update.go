package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/talha426/Shadow-Console-Track/internal/diag"
	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

// UpdateTaskInput carries a partial edit; nil fields keep their stored
// value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *Priority
	Status      *Status
	StartDate   *time.Time
	DueDate     *time.Time
}

// UpdateTask applies an edit to a mission. Changing priority re-derives
// the frozen XP value; moving in or out of completed maintains the
// completed-at invariant (set exactly once on completion, cleared on
// reset). UpdatedAt is touched on every edit.
func (s *Service) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*storage.Task, error) {
	t, err := s.applyUpdate(ctx, id, in)
	if err != nil {
		s.recordFailure(diag.KindMission, diag.SeverityMedium, "UPDATE_TASK", err)
		return nil, err
	}
	s.recordSuccess("UPDATE_TASK", map[string]string{
		"taskId": t.ID,
		"status": t.Status,
	})
	s.log.Info("mission updated", zap.String("id", t.ID))
	return t, nil
}

func (s *Service) applyUpdate(ctx context.Context, id string, in UpdateTaskInput) (*storage.Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{TaskID: id}
	}

	if in.Title != nil {
		title, err := normalizeTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		t.Title = title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Category != nil && *in.Category != "" {
		t.Category = *in.Category
	}
	if in.Priority != nil && in.Priority.IsValid() {
		t.Priority = string(*in.Priority)
		t.XPValue = XPForPriority(*in.Priority)
	}
	if in.StartDate != nil {
		t.StartDate = in.StartDate
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}

	now := s.now()
	if in.Status != nil && in.Status.IsValid() {
		prev := StatusFromStored(t.Status)
		next := *in.Status
		t.Status = string(next)
		switch {
		case next == StatusCompleted && prev != StatusCompleted:
			completed := now
			t.CompletedAt = &completed
		case next != StatusCompleted:
			t.CompletedAt = nil
		}
	}
	t.UpdatedAt = now

	if err := s.tasks.Update(ctx, *t); err != nil {
		return nil, err
	}
	if _, err := s.evaluateProgress(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTask removes a mission from the collection.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return NotFoundError{TaskID: id}
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		s.recordFailure(diag.KindMission, diag.SeverityLow, "DELETE_TASK", err)
		return err
	}
	if _, err := s.evaluateProgress(ctx); err != nil {
		return err
	}
	s.recordSuccess("DELETE_TASK", map[string]string{"taskId": id})
	s.log.Info("mission deleted", zap.String("id", id))
	return nil
}
