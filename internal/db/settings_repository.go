package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/folio/internal/models"
)

// Settings repository errors.
var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidSetting  = errors.New("invalid setting")
)

// SettingsRepository handles site setting persistence.
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsQuerier interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Get retrieves a setting by key.
func (r *SettingsRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	return getSetting(ctx, r.db, key)
}

// GetWithTx retrieves a setting inside an existing transaction.
func (r *SettingsRepository) GetWithTx(ctx context.Context, tx *sql.Tx, key string) (*models.Setting, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction is required")
	}
	return getSetting(ctx, tx, key)
}

func getSetting(ctx context.Context, q settingsQuerier, key string) (*models.Setting, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, key, value, created_at, updated_at
		FROM settings WHERE key = ?
	`, key)

	return scanSetting(row)
}

// Set inserts or updates a setting.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) (*models.Setting, error) {
	return setSetting(ctx, r.db, key, value)
}

// SetWithTx inserts or updates a setting inside an existing transaction.
func (r *SettingsRepository) SetWithTx(ctx context.Context, tx *sql.Tx, key, value string) (*models.Setting, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction is required")
	}
	return setSetting(ctx, tx, key, value)
}

func setSetting(ctx context.Context, q settingsQuerier, key, value string) (*models.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrInvalidSetting
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := q.ExecContext(ctx, `
		INSERT INTO settings (id, key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, uuid.New().String(), key, value, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return getSetting(ctx, q, key)
}

// Delete removes a setting by key.
func (r *SettingsRepository) Delete(ctx context.Context, key string) error {
	return deleteSetting(ctx, r.db, key)
}

// DeleteWithTx removes a setting inside an existing transaction.
func (r *SettingsRepository) DeleteWithTx(ctx context.Context, tx *sql.Tx, key string) error {
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}
	return deleteSetting(ctx, tx, key)
}

func deleteSetting(ctx context.Context, q settingsQuerier, key string) error {
	result, err := q.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSettingNotFound
	}
	return nil
}

// List returns all settings ordered by key.
func (r *SettingsRepository) List(ctx context.Context) ([]*models.Setting, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, key, value, created_at, updated_at
		FROM settings ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		setting, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings: %w", err)
	}

	return settings, nil
}

// Setting implements site.SettingsProvider.
func (r *SettingsRepository) Setting(ctx context.Context, key string) (string, bool, error) {
	setting, err := r.Get(ctx, key)
	if errors.Is(err, ErrSettingNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSetting(row rowScanner) (*models.Setting, error) {
	var (
		setting   models.Setting
		createdAt string
		updatedAt string
	)
	err := row.Scan(&setting.ID, &setting.Key, &setting.Value, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan setting: %w", err)
	}

	if setting.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if setting.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return &setting, nil
}
