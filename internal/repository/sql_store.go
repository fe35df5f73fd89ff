package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type stateEntryModel struct {
	Key       string         `gorm:"column:state_key;primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (stateEntryModel) TableName() string { return "state_entries" }

// SQLStore keeps state documents in a single key/value table.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&stateEntryModel{})
}

func (s *SQLStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	var m stateEntryModel
	tx := s.db.WithContext(ctx).Where("state_key = ?", key).Limit(1).Find(&m)
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected == 0 || len(m.Value) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(m.Value, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	now := time.Now().UTC()

	updated, err := s.update(ctx, key, raw, now)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	m := stateEntryModel{Key: key, Value: datatypes.JSON(raw), UpdatedAt: now}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueConstraintError(err) {
			_, err = s.update(ctx, key, raw, now)
			return err
		}
		return err
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("state_key = ?", key).Delete(&stateEntryModel{}).Error
}

func (s *SQLStore) update(ctx context.Context, key string, raw []byte, now time.Time) (bool, error) {
	tx := s.db.WithContext(ctx).
		Model(&stateEntryModel{}).
		Where("state_key = ?", key).
		Updates(map[string]any{"value": datatypes.JSON(raw), "updated_at": now})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
