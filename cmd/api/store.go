package main

import (
	"context"

	"argo-assistant/config"
	"argo-assistant/internal/conversation/repository"
	sheetsRepo "argo-assistant/internal/conversation/repository/sheets"
	sqliteRepo "argo-assistant/internal/conversation/repository/sqlite"
	"argo-assistant/pkg/log"
	"argo-assistant/pkg/sheets"
)

// initStore builds the conversation store selected by store.driver.
// Any failure is logged and leaves the store unconfigured; it never stops startup.
func initStore(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.Repository, func()) {
	noop := func() {}

	switch cfg.Store.Driver {
	case config.StoreDriverSheets:
		if cfg.Sheets.CredentialsPath == "" || cfg.Sheets.SpreadsheetID == "" {
			logger.Warn(ctx, "Google Sheets store skipped: GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_SHEET_ID is missing")
			return nil, noop
		}
		client, err := sheets.NewClientFromCredentialsFile(ctx, cfg.Sheets.CredentialsPath, cfg.Sheets.SpreadsheetID)
		if err != nil {
			logger.Warnf(ctx, "Google Sheets not available (optional): %v", err)
			return nil, noop
		}
		logger.Info(ctx, "✅ Google Sheets conversation store initialized")
		return sheetsRepo.New(client, cfg.Sheets.LogRange, logger), noop

	case config.StoreDriverSQLite:
		db, err := sqliteRepo.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			logger.Warnf(ctx, "SQLite store not available (optional): %v", err)
			return nil, noop
		}
		logger.Infof(ctx, "✅ SQLite conversation store initialized at %s", cfg.SQLite.Path)
		return sqliteRepo.New(db, logger), func() {
			if err := db.Close(); err != nil {
				logger.Warnf(ctx, "Failed to close SQLite store: %v", err)
			}
		}

	default:
		logger.Warn(ctx, "Conversation store not configured: conversations will not be logged")
		return nil, noop
	}
}
