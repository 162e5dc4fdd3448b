package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one schema change, applied in order after the recorded version
type step struct {
	version     string
	description string
	run         func(tx *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		steps: []step{
			{version: "1.0.0", description: "Ledger tables", run: createTables},
			{version: "1.0.1", description: "Ledger indexes", run: createIndexes},
			{version: "1.1.0", description: "Storage tuning", run: applyPerformanceTweaks},
		},
	}
}

// MigrateAll applies every step newer than the recorded schema version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	// Create migration version table first
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	pending := m.pendingSteps(currentVersion)
	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
		"pending": len(pending),
	})

	for _, s := range pending {
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.run(tx); err != nil {
				return err
			}
			return m.setVersion(tx, s.version, s.description)
		})
		if err != nil {
			m.logger.Error("Failed to apply migration", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s (%s): %w", s.version, s.description, err)
		}

		m.logger.Info("Applied migration", map[string]any{
			"version":     s.version,
			"description": s.description,
		})
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// pendingSteps returns the steps after currentVersion; an unknown version reapplies everything
func (m *MigrationManager) pendingSteps(currentVersion string) []step {
	for i, s := range m.steps {
		if s.version == currentVersion {
			return m.steps[i+1:]
		}
	}
	return m.steps
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(tx *gorm.DB, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}
	return tx.Create(&migrationVersion).Error
}

func createTables(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&model.Account{},
		&model.Transaction{},
		&model.AccountLock{},
	)
}

func createIndexes(tx *gorm.DB) error {
	statements := []string{
		// Idempotency keys are unique per account; entries without a key are unconstrained
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_account_idempotency
		ON transactions (account_id, idempotency_key)
		WHERE idempotency_key IS NOT NULL`,

		// Monthly summaries scan by account and created_at
		`CREATE INDEX IF NOT EXISTS idx_transactions_account_kind_created
		ON transactions (account_id, kind, created_at)`,

		`CREATE INDEX IF NOT EXISTS idx_transactions_counterparty_account
		ON transactions (counterparty_account_id)
		WHERE counterparty_account_id IS NOT NULL`,

		`CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)`,
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func applyPerformanceTweaks(tx *gorm.DB) error {
	// Accounts are updated on every posting
	if err := tx.Exec(`ALTER TABLE accounts SET (fillfactor = 80)`).Error; err != nil {
		return err
	}
	return tx.Exec(`ALTER TABLE transactions ALTER COLUMN account_id SET STATISTICS 1000`).Error
}
