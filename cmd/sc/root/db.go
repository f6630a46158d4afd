package root

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/talha426/Shadow-Console-Track/internal/config"
	"github.com/talha426/Shadow-Console-Track/internal/diag"
	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/storage"
	"github.com/talha426/Shadow-Console-Track/pkg/logger"
)

// app bundles everything a command needs beyond the service itself.
type app struct {
	cfg  *config.Config
	svc  *engine.Service
	diag *diag.Log
	log  *zap.Logger
}

// openApp wires config, logging, the sqlite store and the diagnostic
// store. A broken diagnostic store degrades to a no-op sink rather than
// failing the command.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	dl, err := diag.Open(cfg.DiagPath)
	if err != nil {
		log.Warn("diagnostic store unavailable", zap.Error(err))
		dl = nil
	}

	svc := engine.NewService(db)
	svc.AttachLogger(log)
	svc.AttachDiag(dl)
	if _, err := svc.LoadSettings(ctx); err != nil {
		log.Warn("load settings", zap.Error(err))
	}
	if err := storage.NewMetaRepo(db).Set(ctx, storage.MetaAppStartTime, time.Now().Format(time.RFC3339)); err != nil {
		log.Warn("record app start", zap.Error(err))
	}

	cleanup := func() {
		_ = dl.Close()
		_ = db.Close()
		_ = log.Sync()
	}
	return &app{cfg: cfg, svc: svc, diag: dl, log: log}, cleanup, nil
}

// openService is the common entry for commands that only touch the
// engine.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return nil, nil, err
	}
	return a.svc, cleanup, nil
}
