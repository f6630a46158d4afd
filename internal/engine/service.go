package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/talha426/Shadow-Console-Track/internal/config"
	"github.com/talha426/Shadow-Console-Track/internal/diag"
	"github.com/talha426/Shadow-Console-Track/internal/storage"
)

// Service orchestrates the repositories and the progression rules. All
// mutations flow through it; views read derived values from its results.
type Service struct {
	db           *sql.DB
	tasks        *storage.TaskRepo
	players      *storage.PlayerRepo
	quests       *storage.QuestRepo
	achievements *storage.AchievementRepo
	meta         *storage.KVRepo
	settingsRepo *storage.KVRepo

	diag     *diag.Log
	log      *zap.Logger
	settings *config.SettingsStore

	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:           db,
		tasks:        storage.NewTaskRepo(db),
		players:      storage.NewPlayerRepo(db),
		quests:       storage.NewQuestRepo(db),
		achievements: storage.NewAchievementRepo(db),
		meta:         storage.NewMetaRepo(db),
		settingsRepo: storage.NewSettingsRepo(db),
		log:          zap.NewNop(),
		now:          time.Now,
	}
}

// AttachDiag wires the diagnostic log. A nil log is a valid no-op sink.
func (s *Service) AttachDiag(l *diag.Log) { s.diag = l }

// AttachLogger wires the process logger.
func (s *Service) AttachLogger(l *zap.Logger) {
	if l != nil {
		s.log = l
	}
}

// AttachSettings wires the user settings store; the engine reads it only
// to gate the completion chime.
func (s *Service) AttachSettings(st *config.SettingsStore) { s.settings = st }

func (s *Service) DB() *sql.DB                               { return s.db }
func (s *Service) TaskRepo() *storage.TaskRepo               { return s.tasks }
func (s *Service) PlayerRepo() *storage.PlayerRepo           { return s.players }
func (s *Service) QuestRepo() *storage.QuestRepo             { return s.quests }
func (s *Service) AchievementRepo() *storage.AchievementRepo { return s.achievements }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: "title"}
	}
	return t, nil
}

// Player returns the single local player, correcting any drift between
// the stored level/rank and the values derived from total XP.
func (s *Service) Player(ctx context.Context) (*storage.Player, error) {
	p, err := s.players.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	level := GetLevelInfo(p.TotalXP).Level
	rank := GetRankInfo(p.TotalXP).Title
	if p.Level != level || p.Rank != rank {
		p.Level = level
		p.Rank = rank
		if err := s.players.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// LoadSettings reads the persisted settings document into a store.
func (s *Service) LoadSettings(ctx context.Context) (*config.SettingsStore, error) {
	raw, err := s.settingsRepo.Get(ctx, storage.SettingsKey)
	if err != nil {
		return nil, err
	}
	store := config.NewSettingsStore(config.ParseSettings(raw))
	// Persist every change back to the settings table.
	store.Subscribe(func(config.Settings) {
		doc, err := store.Marshal()
		if err != nil {
			return
		}
		if err := s.settingsRepo.Set(context.Background(), storage.SettingsKey, doc); err != nil {
			s.log.Warn("persist settings", zap.Error(err))
		}
	})
	s.settings = store
	return store, nil
}

// Quests returns the current daily and weekly quest sets, regenerating
// stale periods first and re-evaluating progress.
func (s *Service) Quests(ctx context.Context) (daily, weekly []storage.Quest, err error) {
	if err := s.EnsureQuestsFresh(ctx); err != nil {
		return nil, nil, err
	}
	if _, err := s.evaluateProgress(ctx); err != nil {
		return nil, nil, err
	}
	if daily, err = s.quests.ListByType(ctx, QuestTypeDaily); err != nil {
		return nil, nil, err
	}
	if weekly, err = s.quests.ListByType(ctx, QuestTypeWeekly); err != nil {
		return nil, nil, err
	}
	return daily, weekly, nil
}

// EnsureQuestsFresh regenerates the daily set when the local day changed
// since the last reset, and the weekly set when the week changed. The
// reset markers make regeneration idempotent within a period.
func (s *Service) EnsureQuestsFresh(ctx context.Context) error {
	now := s.now()

	today := dayOf(now).Format("2006-01-02")
	lastDaily, err := s.meta.Get(ctx, storage.MetaDailyResetDate)
	if err != nil {
		return err
	}
	if lastDaily != today {
		if err := s.quests.ReplaceByType(ctx, QuestTypeDaily, GenerateDailyQuests(now)); err != nil {
			return err
		}
		if err := s.meta.Set(ctx, storage.MetaDailyResetDate, today); err != nil {
			return err
		}
		s.log.Debug("daily quests regenerated", zap.String("date", today))
	}

	weekStart := dayOf(now).AddDate(0, 0, -int(dayOf(now).Weekday())).Format("2006-01-02")
	lastWeekly, err := s.meta.Get(ctx, storage.MetaWeeklyResetDate)
	if err != nil {
		return err
	}
	if lastWeekly != weekStart {
		if err := s.quests.ReplaceByType(ctx, QuestTypeWeekly, GenerateWeeklyQuests(now)); err != nil {
			return err
		}
		if err := s.meta.Set(ctx, storage.MetaWeeklyResetDate, weekStart); err != nil {
			return err
		}
		s.log.Debug("weekly quests regenerated", zap.String("week", weekStart))
	}
	return nil
}

// Achievements returns the catalog with current unlock state, seeding
// the stored list on first use and evaluating predicates.
func (s *Service) Achievements(ctx context.Context) ([]storage.Achievement, error) {
	if _, err := s.evaluateProgress(ctx); err != nil {
		return nil, err
	}
	return s.achievements.ListAll(ctx)
}

// progressDelta reports what an evaluation pass unlocked.
type progressDelta struct {
	Quests       []storage.Quest
	Achievements []storage.Achievement
	XPAwarded    int
}

// evaluateProgress recomputes quest progress and achievement unlock state
// from the task collection, persists both, and awards the reward XP for
// every false→true transition. Because both transitions are monotone the
// award fires exactly once per unlock no matter how often this runs.
func (s *Service) evaluateProgress(ctx context.Context) (*progressDelta, error) {
	now := s.now()
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	player, err := s.players.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}

	delta := &progressDelta{}

	var quests []storage.Quest
	for _, qt := range []string{QuestTypeDaily, QuestTypeWeekly} {
		qs, err := s.quests.ListByType(ctx, qt)
		if err != nil {
			return nil, err
		}
		quests = append(quests, qs...)
	}
	updated, unlocked := EvaluateQuests(quests, tasks, now)
	for _, q := range updated {
		if err := s.quests.UpdateProgress(ctx, q); err != nil {
			return nil, err
		}
	}
	for _, q := range unlocked {
		delta.XPAwarded += q.XPReward
	}
	delta.Quests = unlocked

	prev, err := s.achievements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	updatedAch, newlyUnlocked := CheckAchievements(tasks, player, prev, now)
	if err := s.achievements.SaveAll(ctx, updatedAch); err != nil {
		return nil, err
	}
	for _, a := range newlyUnlocked {
		delta.XPAwarded += a.XPReward
	}
	delta.Achievements = newlyUnlocked

	if delta.XPAwarded > 0 {
		player.TotalXP += delta.XPAwarded
		player.Level = GetLevelInfo(player.TotalXP).Level
		player.Rank = GetRankInfo(player.TotalXP).Title
		if err := s.players.Update(ctx, player); err != nil {
			return nil, err
		}
	}
	return delta, nil
}

// refreshStreaks recomputes the player's streak counters from the task
// collection.
func (s *Service) refreshStreaks(ctx context.Context, p *storage.Player) error {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return err
	}
	p.CurrentStreak = calculateStreakAt(tasks, s.now())
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	return nil
}

// soundEnabled reports whether the completion chime should play.
func (s *Service) soundEnabled() bool {
	if s.settings == nil {
		return false
	}
	st := s.settings.Get()
	return st.Volume && st.SoundEffects
}

// recordFailure logs a mutation failure to the diagnostic store; the
// error itself still propagates to the caller, never fatally.
func (s *Service) recordFailure(kind diag.Kind, severity diag.Severity, action string, err error) {
	if recErr := s.diag.Record(diag.Entry{
		Kind:     kind,
		Severity: severity,
		Action:   action,
		Message:  err.Error(),
	}); recErr != nil {
		s.log.Warn("record diagnostic", zap.Error(recErr))
	}
}

// recordSuccess logs a successful mutation to the diagnostic store.
func (s *Service) recordSuccess(action string, details map[string]string) {
	if err := s.diag.Record(diag.Entry{
		Kind:    diag.KindMission,
		Action:  action,
		Message: "SUCCESS",
		Details: details,
	}); err != nil {
		s.log.Warn("record diagnostic", zap.Error(err))
	}
}

// IsNotFound reports whether err is a missing-mission error.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
