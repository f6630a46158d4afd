package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/talha426/Shadow-Console-Track/internal/diag"
	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

// CompleteResult reports everything a completion changed, so the caller
// can render celebrations without re-reading the store.
type CompleteResult struct {
	TaskID               string
	XPAwarded            int // mission XP only; quest/achievement rewards listed below
	LevelBefore          int
	LevelAfter           int
	LevelUp              bool
	Streak               int
	QuestsUnlocked       []storage.Quest
	AchievementsUnlocked []storage.Achievement
	PlaySound            bool
}

// CompleteTask marks a mission completed, awards its frozen XP, then
// re-evaluates streaks, quests and achievements.
func (s *Service) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	res, err := s.completeTask(ctx, id)
	if err != nil {
		s.recordFailure(diag.KindMission, diag.SeverityMedium, "COMPLETE_TASK", err)
		return nil, err
	}
	s.recordSuccess("COMPLETE_TASK", map[string]string{"taskId": id})
	s.log.Info("mission completed",
		zap.String("id", id),
		zap.Int("xp", res.XPAwarded),
		zap.Bool("levelUp", res.LevelUp))
	return res, nil
}

func (s *Service) completeTask(ctx context.Context, id string) (*CompleteResult, error) {
	p, err := s.Player(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := p.Level

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NotFoundError{TaskID: id}
	}
	if StatusFromStored(task.Status) == StatusCompleted {
		return nil, AlreadyCompletedError{TaskID: id}
	}

	now := s.now()
	if err := s.tasks.MarkCompleted(ctx, id, now); err != nil {
		return nil, err
	}

	xp := task.XPValue
	p.TotalXP += xp
	p.CompletedTasks++
	p.Level = GetLevelInfo(p.TotalXP).Level
	p.Rank = GetRankInfo(p.TotalXP).Title
	if err := s.refreshStreaks(ctx, p); err != nil {
		return nil, err
	}
	if err := s.players.Update(ctx, p); err != nil {
		return nil, err
	}

	delta, err := s.evaluateProgress(ctx)
	if err != nil {
		return nil, err
	}

	// Re-read: quest/achievement rewards may have pushed the level again.
	p, err = s.players.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}

	return &CompleteResult{
		TaskID:               id,
		XPAwarded:            xp,
		LevelBefore:          levelBefore,
		LevelAfter:           p.Level,
		LevelUp:              p.Level > levelBefore,
		Streak:               p.CurrentStreak,
		QuestsUnlocked:       delta.Quests,
		AchievementsUnlocked: delta.Achievements,
		PlaySound:            s.soundEnabled(),
	}, nil
}

// ReopenTask resets a completed mission to pending and clears its
// completion timestamp. Earned XP is not clawed back: total XP stays
// monotone.
func (s *Service) ReopenTask(ctx context.Context, id string) error {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		s.recordFailure(diag.KindMission, diag.SeverityMedium, "REOPEN_TASK", err)
		return err
	}
	if task == nil {
		return NotFoundError{TaskID: id}
	}

	if err := s.tasks.Reopen(ctx, id, string(StatusPending), s.now()); err != nil {
		s.recordFailure(diag.KindMission, diag.SeverityMedium, "REOPEN_TASK", err)
		return err
	}

	p, err := s.players.GetOrCreateMain(ctx)
	if err != nil {
		return err
	}
	if err := s.refreshStreaks(ctx, p); err != nil {
		return err
	}
	if err := s.players.Update(ctx, p); err != nil {
		return err
	}

	s.recordSuccess("REOPEN_TASK", map[string]string{"taskId": id})
	return nil
}

// FocusResult reports a completed Shadow Mode session.
type FocusResult struct {
	XPAwarded  int
	LevelAfter int
	LevelUp    bool
}

// CompleteFocusSession awards the flat session bonus (plus the
// long-session bonus) for a finished focus session.
func (s *Service) CompleteFocusSession(ctx context.Context, duration time.Duration) (*FocusResult, error) {
	p, err := s.Player(ctx)
	if err != nil {
		s.recordFailure(diag.KindSystem, diag.SeverityMedium, "FOCUS_SESSION", err)
		return nil, err
	}
	levelBefore := p.Level

	xp := FocusXP(duration)
	p.TotalXP += xp
	p.Level = GetLevelInfo(p.TotalXP).Level
	p.Rank = GetRankInfo(p.TotalXP).Title
	if err := s.players.Update(ctx, p); err != nil {
		s.recordFailure(diag.KindStorage, diag.SeverityMedium, "FOCUS_SESSION", err)
		return nil, err
	}

	s.recordSuccess("FOCUS_SESSION", map[string]string{
		"minutes": duration.Round(time.Minute).String(),
	})
	return &FocusResult{
		XPAwarded:  xp,
		LevelAfter: p.Level,
		LevelUp:    p.Level > levelBefore,
	}, nil
}
